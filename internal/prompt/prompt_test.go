package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"areaadmin/internal/gateway/master"
	"areaadmin/internal/model"
	"areaadmin/internal/service/area"
	"areaadmin/pkg/cache"
	"areaadmin/pkg/json"
)

type scriptedDriver struct {
	inputs   map[string]string
	selects  map[string]string
	confirms map[string]bool
	texts    map[string]string
	defaults map[string]string
	// rejected collects validator messages per prompt
	rejected map[string]string
	asked    []string
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	answer := d.inputs[cfg.Message]
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			d.rejected[cfg.Message] = err.Error()
			return "", err
		}
	}
	return answer, nil
}

func (d *scriptedDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	return d.confirms[cfg.Message], nil
}

func (d *scriptedDriver) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	return d.selects[cfg.Message], nil
}

func (d *scriptedDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if d.defaults != nil {
		d.defaults[cfg.Message] = cfg.Default
	}
	return d.texts[cfg.Message], nil
}

type nopUI struct{}

func (nopUI) Success(string) {}
func (nopUI) Error(string) {}
func (nopUI) ToList() {}
func (nopUI) ToCreate() {}
func (nopUI) ToEdit(string) {}
func (nopUI) Confirm(context.Context, string) (bool, error) { return true, nil }

type oneArea struct {
	master.AreaSrv
	area *model.Area
}

func (o oneArea) Area() master.AreaSrv { return o }

func (o oneArea) Get(ctx context.Context, id string) (*model.Area, error) {
	return o.area, nil
}

func newSrv(t *testing.T, a *model.Area) area.AreaSrv {
	srv, err := area.NewAreaSrv(oneArea{area: a}, cache.New(), area.UI{Notifier: nopUI{}, Navigator: nopUI{}, Confirmer: nopUI{}})
	require.NoError(t, err)
	return srv
}

func TestFillForm_Create(t *testing.T) {
	d := &scriptedDriver{
		inputs:   map[string]string{"Area ID": "A1", "Area Name": "North Zone"},
		selects:  map[string]string{"Status": "active"},
		confirms: map[string]bool{"Active": true},
		texts:    map[string]string{"Description": `{"floor": 2}`},
		rejected: map[string]string{},
		defaults: map[string]string{},
	}
	f := newSrv(t, nil).NewCreateForm()
	require.NoError(t, FillForm(context.Background(), d, f))
	assert.Equal(t, "", d.defaults["Description"])

	values := f.Values()
	assert.Equal(t, "A1", values.AreaID)
	assert.Equal(t, "North Zone", values.AreaName)
	assert.Equal(t, model.StatusActive, values.Status)
	assert.True(t, values.Enable)
	assert.Equal(t, json.RawMessage(`{"floor": 2}`), values.Description)
	assert.Empty(t, f.Validate())
}

func TestFillForm_Rejected(t *testing.T) {
	d := &scriptedDriver{
		inputs:   map[string]string{"Area ID": "012345678901234567890"},
		rejected: map[string]string{},
	}
	f := newSrv(t, nil).NewCreateForm()
	require.Error(t, FillForm(context.Background(), d, f))
	assert.Equal(t, "Area ID cannot exceed 20 characters", d.rejected["Area ID"])
}

func TestFillForm_EditSkipsID(t *testing.T) {
	d := &scriptedDriver{
		inputs:   map[string]string{"Area Name": "South"},
		selects:  map[string]string{"Status": "inactive"},
		confirms: map[string]bool{"Active": false},
		texts:    map[string]string{"Description": "plain"},
		rejected: map[string]string{},
	}
	f := newSrv(t, &model.Area{Base64PK: "eHl6", AreaID: "A1", AreaName: "North", Status: model.StatusActive}).
		NewEditForm("eHl6")
	require.NoError(t, f.Open(context.Background()))
	require.NoError(t, FillForm(context.Background(), d, f))
	assert.Equal(t, []string{"Area Name", "Status", "Active", "Description"}, d.asked)
	values := f.Values()
	assert.Equal(t, "A1", values.AreaID)
	assert.Equal(t, "South", values.AreaName)
	assert.Equal(t, "plain", values.Description)
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "free text", Description("free text"))
	assert.Equal(t, "", Description(""))
	assert.Equal(t, "42", Description("42"))
	assert.Equal(t, json.RawMessage(`["a"]`), Description(` ["a"] `))
	assert.Equal(t, "{broken", Description("{broken"))
}

func TestDescription_Verbatim(t *testing.T) {
	typed := `{"zone": "b", "id": 12345678901234567890}`
	f := newSrv(t, nil).NewCreateForm()
	require.NoError(t, f.SetDescription(Description(typed)))
	payload, err := f.Values().Payload()
	require.NoError(t, err)
	assert.Equal(t, typed, payload.Description)

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"description":"{\"zone\": \"b\", \"id\": 12345678901234567890}"`)
}

func TestConfirmer(t *testing.T) {
	ok, err := Confirmer{AutoYes: true}.Confirm(context.Background(), "sure?")
	require.NoError(t, err)
	assert.True(t, ok)

	d := &scriptedDriver{confirms: map[string]bool{"sure?": false}}
	ok, err = Confirmer{Driver: d}.Confirm(context.Background(), "sure?")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"sure?"}, d.asked)
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("eof")
	assert.Equal(t, other, translateSurveyErr(other))
}
