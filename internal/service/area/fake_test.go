package area

import (
	"context"
	"net/http"
	"sync"

	"areaadmin/internal/gateway/master"
	"areaadmin/internal/model"
	"areaadmin/pkg/cache"
	"areaadmin/pkg/code"
)

type fakeAreas struct {
	mux     sync.Mutex
	rows    []*model.Area
	states  []model.TableState
	created []*model.AreaFormData
	updated map[string]*model.AreaFormData
	deleted []string

	listErr   error
	getErr    error
	submitErr error
	deleteErr error
	// block, when set, holds List until it is closed
	block chan struct{}
	// totals overrides the total count per page
	totals map[int]int
}

func (f *fakeAreas) Area() master.AreaSrv {
	return f
}

func (f *fakeAreas) List(ctx context.Context, state model.TableState) (*model.AreaList, error) {
	f.mux.Lock()
	f.states = append(f.states, state)
	block := f.block
	err := f.listErr
	rows := make([]*model.Area, len(f.rows))
	copy(rows, f.rows)
	total, ok := f.totals[state.Current]
	if !ok {
		total = len(rows)
	}
	f.mux.Unlock()
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	return &model.AreaList{TotalCount: total, Data: rows}, nil
}

func (f *fakeAreas) Get(ctx context.Context, id string) (*model.Area, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, row := range f.rows {
		if row.Base64PK == id {
			c := *row
			return &c, nil
		}
	}
	return nil, code.HTTP(http.StatusNotFound, []byte(`{"detail":"Not found."}`))
}

func (f *fakeAreas) Create(ctx context.Context, data *model.AreaFormData) (*model.Area, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.created = append(f.created, data)
	area := &model.Area{Base64PK: data.AreaID, AreaID: data.AreaID, AreaName: data.AreaName}
	f.rows = append(f.rows, area)
	return area, nil
}

func (f *fakeAreas) Update(ctx context.Context, id string, data *model.AreaFormData) (*model.Area, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	if f.updated == nil {
		f.updated = map[string]*model.AreaFormData{}
	}
	f.updated[id] = data
	return &model.Area{Base64PK: id, AreaID: data.AreaID}, nil
}

func (f *fakeAreas) Delete(ctx context.Context, id string) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i, row := range f.rows {
		if row.Base64PK == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAreas) listCalls() int {
	f.mux.Lock()
	defer f.mux.Unlock()
	return len(f.states)
}

type fakeUI struct {
	mux       sync.Mutex
	successes []string
	errors    []string
	routes    []string
	confirm   bool
	asked     []string
}

func (u *fakeUI) Success(message string) {
	u.mux.Lock()
	defer u.mux.Unlock()
	u.successes = append(u.successes, message)
}

func (u *fakeUI) Error(message string) {
	u.mux.Lock()
	defer u.mux.Unlock()
	u.errors = append(u.errors, message)
}

func (u *fakeUI) ToList() {
	u.mux.Lock()
	defer u.mux.Unlock()
	u.routes = append(u.routes, "list")
}

func (u *fakeUI) ToCreate() {
	u.mux.Lock()
	defer u.mux.Unlock()
	u.routes = append(u.routes, "create")
}

func (u *fakeUI) ToEdit(pk string) {
	u.mux.Lock()
	defer u.mux.Unlock()
	u.routes = append(u.routes, "edit/"+pk)
}

func (u *fakeUI) Confirm(ctx context.Context, message string) (bool, error) {
	u.mux.Lock()
	defer u.mux.Unlock()
	u.asked = append(u.asked, message)
	return u.confirm, nil
}

type fixture struct {
	areas   *fakeAreas
	ui      *fakeUI
	queries *cache.QueryCache
	srv     AreaSrv
}

func newFixture(rows ...*model.Area) (*fixture, error) {
	f := &fixture{
		areas:   &fakeAreas{rows: rows},
		ui:      &fakeUI{confirm: true},
		queries: cache.New(),
	}
	srv, err := NewAreaSrv(f.areas, f.queries, UI{Notifier: f.ui, Navigator: f.ui, Confirmer: f.ui})
	if err != nil {
		return nil, err
	}
	f.srv = srv
	return f, nil
}
