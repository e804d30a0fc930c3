package area

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"areaadmin/internal/model"
	"areaadmin/pkg/code"
	"areaadmin/pkg/logger"
	"areaadmin/pkg/validator"
)

type ListStatus string

const (
	StatusIdle    ListStatus = "idle"
	StatusLoading ListStatus = "loading"
	StatusSuccess ListStatus = "success"
	StatusError   ListStatus = "error"
)

// ListView keeps the area table in step with the backend. Every state
// change computes a new query key and fetches only when the key moved.
type ListView struct {
	srv *areaSrv

	mux    sync.Mutex
	state  model.TableState
	draft  string
	rows   []*model.Area
	total  int
	status ListStatus
	err    error
}

// Load fetches the current page, a fresh cached result is reused
func (v *ListView) Load(ctx context.Context) error {
	return v.fetch(ctx, false)
}

// Change applies a table interaction: paging, sorting or column filters.
// An empty sort field or order falls back to the default.
func (v *ListView) Change(ctx context.Context, page, pageSize int, sortField string, sortOrder model.SortOrder,
	filters map[string]string) error {
	if sortField != "" {
		if err := validator.Var(v.srv.validator, sortField, tagSortField); err != nil {
			logger.From(ctx).Warn("ignore invalid sort field", zap.String("sort_field", sortField))
			sortField = ""
		}
	}
	v.mux.Lock()
	prev := v.state.Key()
	next := model.TableState{
		Pagination: model.Pagination{Current: page, PageSize: pageSize},
		Sort:       model.Sort{SortField: sortField, SortOrder: sortOrder},
		Search:     v.state.Search,
		Filters:    filters,
	}.Normalize()
	v.state = next
	v.mux.Unlock()
	if next.Key() == prev {
		return nil
	}
	return v.fetch(ctx, false)
}

// SetSearchText edits the search box without querying
func (v *ListView) SetSearchText(text string) {
	v.mux.Lock()
	v.draft = text
	v.mux.Unlock()
}

// Search commits the search box, goes back to the first page and refetches
func (v *ListView) Search(ctx context.Context) error {
	v.mux.Lock()
	v.state = v.state.Clone()
	v.state.Search = v.draft
	v.state.Current = model.DefaultCurrent
	v.mux.Unlock()
	return v.fetch(ctx, true)
}

// Reset restores the default table state and clears the search box
func (v *ListView) Reset(ctx context.Context) error {
	v.mux.Lock()
	v.state = model.DefaultTableState()
	v.draft = ""
	v.mux.Unlock()
	return v.fetch(ctx, true)
}

func (v *ListView) Add() {
	v.srv.ui.ToCreate()
}

// Edit opens the form of the row identified by pk
func (v *ListView) Edit(pk string) {
	v.srv.ui.ToEdit(pk)
}

// Delete asks for confirmation, deletes pk and reloads the list. A
// declined confirmation sends nothing.
func (v *ListView) Delete(ctx context.Context, pk string) error {
	ok, err := v.srv.ui.Confirm(ctx, MsgDeleteConfirm)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err = v.srv.client.Area().Delete(ctx, pk); err != nil {
		logger.From(ctx).Error("delete area failed", zap.String("pk", pk), zap.Error(err))
		v.srv.ui.Error(code.OpDelete.Failed())
		return err
	}
	v.srv.ui.Success(MsgDeleted)
	v.srv.queries.Invalidate(ResourceAreas)
	v.srv.queries.Invalidate(ResourceArea, pk)
	return v.fetch(ctx, false)
}

func (v *ListView) fetch(ctx context.Context, force bool) error {
	v.mux.Lock()
	state := v.state.Clone()
	v.status = StatusLoading
	v.mux.Unlock()

	list, err := v.srv.list(ctx, state, force)

	v.mux.Lock()
	if v.state.Key() != state.Key() {
		// superseded by a newer state, its own fetch reports
		v.mux.Unlock()
		logger.From(ctx).Debug("drop stale area list", zap.String("key", state.Key()))
		return nil
	}
	if err != nil {
		v.status = StatusError
		v.err = err
		v.mux.Unlock()
		logger.From(ctx).Error("list areas failed", zap.String("key", state.Key()), zap.Error(err))
		v.srv.ui.Error(code.OpList.Describe(err))
		return err
	}
	v.rows = list.Data
	v.total = list.TotalCount
	v.status = StatusSuccess
	v.err = nil
	v.mux.Unlock()
	return nil
}

func (v *ListView) State() model.TableState {
	v.mux.Lock()
	defer v.mux.Unlock()
	return v.state.Clone()
}

// Rows the rows of the last applied result, keyed by Base64PK
func (v *ListView) Rows() []*model.Area {
	v.mux.Lock()
	defer v.mux.Unlock()
	rows := make([]*model.Area, len(v.rows))
	copy(rows, v.rows)
	return rows
}

func (v *ListView) Total() int {
	v.mux.Lock()
	defer v.mux.Unlock()
	return v.total
}

func (v *ListView) Status() ListStatus {
	v.mux.Lock()
	defer v.mux.Unlock()
	return v.status
}

func (v *ListView) Err() error {
	v.mux.Lock()
	defer v.mux.Unlock()
	return v.err
}

func (v *ListView) SearchText() string {
	v.mux.Lock()
	defer v.mux.Unlock()
	return v.draft
}
