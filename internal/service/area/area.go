package area

import (
	"context"

	"areaadmin/internal/gateway"
	"areaadmin/internal/model"
	"areaadmin/pkg/cache"
	"areaadmin/pkg/code"
	"areaadmin/pkg/validator"
)

type AreaSrv interface {
	NewListView() *ListView
	NewCreateForm() *FormView
	NewEditForm(pk string) *FormView
	// Detail the record behind pk, served from the query cache while fresh
	Detail(ctx context.Context, pk string) (*model.Area, error)
}

// UI the front end hooks the views report to
type UI struct {
	Notifier
	Navigator
	Confirmer
}

func NewAreaSrv(client gateway.IClient, queries *cache.QueryCache, ui UI) (AreaSrv, error) {
	v, err := NewValidator()
	if err != nil {
		return nil, err
	}
	return &areaSrv{
		client:    client,
		queries:   queries,
		ui:        ui,
		validator: v,
	}, nil
}

type areaSrv struct {
	client    gateway.IClient
	queries   *cache.QueryCache
	ui        UI
	validator validator.Validator
}

func (a *areaSrv) NewListView() *ListView {
	return &ListView{srv: a, state: model.DefaultTableState(), status: StatusIdle}
}

func (a *areaSrv) NewCreateForm() *FormView {
	return newCreateForm(a)
}

func (a *areaSrv) NewEditForm(pk string) *FormView {
	return newEditForm(a, pk)
}

func (a *areaSrv) Detail(ctx context.Context, pk string) (*model.Area, error) {
	area, err := a.get(ctx, pk)
	if err != nil {
		a.ui.Error(code.OpGet.Describe(err))
		return nil, err
	}
	return area, nil
}

func (a *areaSrv) list(ctx context.Context, state model.TableState, force bool) (*model.AreaList, error) {
	value, err := a.queries.Fetch(ctx, ListKey(state), func(ctx context.Context) (interface{}, error) {
		return a.client.Area().List(ctx, state)
	}, force)
	if err != nil {
		return nil, err
	}
	return value.(*model.AreaList), nil
}

func (a *areaSrv) get(ctx context.Context, pk string) (*model.Area, error) {
	value, err := a.queries.Fetch(ctx, DetailKey(pk), func(ctx context.Context) (interface{}, error) {
		return a.client.Area().Get(ctx, pk)
	}, false)
	if err != nil {
		return nil, err
	}
	return value.(*model.Area), nil
}
