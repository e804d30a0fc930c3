package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type structCustomValidation struct {
	SortField string `json:"sortField" binding:"sort_field"`
}

func TestSortField(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	require.NoError(t, RegisterValidation(engine, "sort_field", SortField))
	require.NoError(t, RegisterMessage(engine, "sort_field", "{0} must be a column name"))

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty", value: "", wantErr: true},
		{name: "area_id", value: "area_id", wantErr: false},
		{name: "single_char", value: "u", wantErr: false},
		{name: "digits", value: "created2", wantErr: false},
		{name: "upper", value: "AreaID", wantErr: true},
		{name: "leading_underscore", value: "_id", wantErr: true},
		{name: "injection", value: "area_id;drop", wantErr: true},
		{name: "multi", value: "area_id,area_name", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateStruct(structCustomValidation{SortField: tt.value})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var errs Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, []string{"sortField must be a column name"}, errs.Fields()["sortField"])
		})
	}
}

type form struct {
	ID     string `json:"area_id" binding:"required,max=20"`
	Name   string `json:"area_name" binding:"required,max=100"`
	Status string `json:"status" binding:"required,oneof=draft active inactive"`
}

func TestValidateStruct(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	err = engine.ValidateStruct(&form{ID: "ÄÖÜÄÖÜÄÖÜÄÖÜÄÖÜÄÖÜÄÖ", Status: "gone"})
	var errs Errors
	require.ErrorAs(t, err, &errs)

	tags := map[string]string{}
	for _, fe := range errs {
		tags[fe.Field] = fe.Tag
	}
	assert.Equal(t, map[string]string{"area_id": "max", "area_name": "required", "status": "oneof"}, tags)
	assert.Contains(t, err.Error(), "area_name is a required field")
}

func TestValidateStructExcept(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	assert.NoError(t, engine.ValidateStructExcept(&form{Name: "North", Status: "draft"}, "ID"))
	assert.Error(t, engine.ValidateStructExcept(&form{Name: "North", Status: "draft"}))
}

func TestValidateStruct_Slice(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	err = engine.ValidateStruct([]form{
		{ID: "A1", Name: "North", Status: "active"},
		{ID: "A2", Name: "", Status: "active"},
	})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 1)
	assert.Equal(t, "area_name", errs[0].Field)
}
