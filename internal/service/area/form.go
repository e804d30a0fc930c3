package area

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"areaadmin/internal/model"
	"areaadmin/pkg/code"
	"areaadmin/pkg/logger"
)

type FormState string

const (
	FormNew             FormState = "new"
	FormLoadingExisting FormState = "loadingExisting"
	FormReady           FormState = "ready"
	FormSubmitting      FormState = "submitting"
	FormSuccess         FormState = "success"
	FormError           FormState = "error"
)

var (
	ErrReadOnly = errors.New("area id can not be changed after creation")
	ErrNotReady = errors.New("form is not ready")
)

// FormView creates an area, or edits the one identified by its pk.
type FormView struct {
	srv *areaSrv
	// pk empty in create mode
	pk string

	mux         sync.Mutex
	state       FormState
	values      *model.AreaFormData
	loaded      *model.AreaFormData
	fieldErrors map[string][]string
	err         error
}

func newCreateForm(srv *areaSrv) *FormView {
	return &FormView{srv: srv, state: FormReady, values: model.NewAreaFormData()}
}

func newEditForm(srv *areaSrv, pk string) *FormView {
	return &FormView{srv: srv, pk: pk, state: FormNew, values: model.NewAreaFormData()}
}

func (f *FormView) IsEdit() bool {
	return f.pk != ""
}

func (f *FormView) PK() string {
	return f.pk
}

// Open loads the record in edit mode. On failure the user is sent back to
// the list and the form stays in the error state.
func (f *FormView) Open(ctx context.Context) error {
	if !f.IsEdit() {
		return nil
	}
	f.mux.Lock()
	if f.state != FormNew {
		f.mux.Unlock()
		return nil
	}
	f.state = FormLoadingExisting
	f.mux.Unlock()

	area, err := f.srv.get(ctx, f.pk)
	if err != nil {
		f.mux.Lock()
		f.state = FormError
		f.err = err
		f.mux.Unlock()
		logger.From(ctx).Error("load area failed", zap.String("pk", f.pk), zap.Error(err))
		f.srv.ui.Error(MsgLoadFailed)
		f.srv.ui.ToList()
		return err
	}
	f.mux.Lock()
	f.values = area.FormData()
	f.loaded = f.values.Clone()
	f.state = FormReady
	f.mux.Unlock()
	return nil
}

// SetAreaID fails in edit mode
func (f *FormView) SetAreaID(id string) error {
	if f.IsEdit() {
		return ErrReadOnly
	}
	return f.update(func(v *model.AreaFormData) { v.AreaID = id })
}

func (f *FormView) SetAreaName(name string) error {
	return f.update(func(v *model.AreaFormData) { v.AreaName = name })
}

func (f *FormView) SetStatus(status model.Status) error {
	return f.update(func(v *model.AreaFormData) { v.Status = status })
}

func (f *FormView) SetEnable(enable bool) error {
	return f.update(func(v *model.AreaFormData) { v.Enable = enable })
}

// SetDescription takes free text or any structured value
func (f *FormView) SetDescription(description interface{}) error {
	return f.update(func(v *model.AreaFormData) { v.Description = description })
}

func (f *FormView) update(set func(*model.AreaFormData)) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if !f.editable() {
		return ErrNotReady
	}
	set(f.values)
	return nil
}

func (f *FormView) editable() bool {
	switch f.state {
	case FormReady, FormError, FormSuccess:
		return !f.IsEdit() || f.loaded != nil
	default:
		return false
	}
}

// Validate checks the current values, the result is keyed by json field name
func (f *FormView) Validate() map[string][]string {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.validate()
}

func (f *FormView) validate() map[string][]string {
	var err error
	if f.IsEdit() {
		err = f.srv.validator.ValidateStructExcept(f.values, "AreaID")
	} else {
		err = f.srv.validator.ValidateStruct(f.values)
	}
	f.fieldErrors = fieldErrors(err)
	return f.fieldErrors
}

// Submit validates, then creates or updates. Caches are invalidated only
// after the backend confirmed the change.
func (f *FormView) Submit(ctx context.Context) error {
	op, done := code.OpCreate, MsgCreated
	if f.IsEdit() {
		op, done = code.OpUpdate, MsgUpdated
	}

	f.mux.Lock()
	if !f.editable() {
		f.mux.Unlock()
		return ErrNotReady
	}
	if fields := f.validate(); len(fields) != 0 {
		f.mux.Unlock()
		return pkgerrors.WithStack(code.Validation(fields))
	}
	f.state = FormSubmitting
	values := f.values.Clone()
	f.mux.Unlock()

	var err error
	if f.IsEdit() {
		_, err = f.srv.client.Area().Update(ctx, f.pk, values)
	} else {
		_, err = f.srv.client.Area().Create(ctx, values)
	}
	if err != nil {
		f.mux.Lock()
		f.state = FormError
		f.err = err
		f.mux.Unlock()
		logger.From(ctx).Error("submit area failed", zap.String("pk", f.pk), zap.Error(err))
		f.srv.ui.Error(op.Describe(err))
		return err
	}

	f.mux.Lock()
	f.state = FormSuccess
	f.err = nil
	f.mux.Unlock()
	f.srv.ui.Success(done)
	f.srv.queries.Invalidate(ResourceAreas)
	if f.IsEdit() {
		f.srv.queries.Invalidate(ResourceArea, f.pk)
	}
	f.srv.ui.ToList()
	return nil
}

// Reset restores the loaded record in edit mode and the defaults otherwise
func (f *FormView) Reset() {
	f.mux.Lock()
	defer f.mux.Unlock()
	switch {
	case !f.IsEdit():
		f.values = model.NewAreaFormData()
	case f.loaded != nil:
		f.values = f.loaded.Clone()
	default:
		return
	}
	f.fieldErrors = nil
	f.err = nil
	if f.state != FormSubmitting {
		f.state = FormReady
	}
}

func (f *FormView) Values() *model.AreaFormData {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.values.Clone()
}

func (f *FormView) State() FormState {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.state
}

func (f *FormView) FieldErrors() map[string][]string {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.fieldErrors
}

func (f *FormView) Err() error {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.err
}
