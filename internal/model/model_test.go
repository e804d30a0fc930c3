package model

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"areaadmin/pkg/json"
)

func TestTableState_Params(t *testing.T) {
	tests := []struct {
		name  string
		state TableState
		want  url.Values
	}{
		{
			name:  "defaults",
			state: DefaultTableState(),
			want: url.Values{
				"page": {"1"}, "pageSize": {"10"}, "sortField": {"area_id"}, "sortOrder": {"asc"},
			},
		},
		{
			name: "search_and_filters",
			state: TableState{
				Pagination: Pagination{Current: 2, PageSize: 20},
				Sort:       Sort{SortField: "area_name", SortOrder: SortDesc},
				Search:     "north",
				Filters:    map[string]string{"status": "active", "empty": "", "page": "9"},
			},
			want: url.Values{
				"page": {"2"}, "pageSize": {"20"}, "sortField": {"area_name"}, "sortOrder": {"desc"},
				"search": {"north"}, "status": {"active"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.state.Params()); diff != "" {
				t.Errorf("Params() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableState_Key(t *testing.T) {
	base := DefaultTableState()
	assert.Equal(t, base.Key(), DefaultTableState().Key())

	changes := []func(*TableState){
		func(s *TableState) { s.Current = 2 },
		func(s *TableState) { s.PageSize = 20 },
		func(s *TableState) { s.SortField = "area_name" },
		func(s *TableState) { s.SortOrder = SortDesc },
		func(s *TableState) { s.Search = "x" },
		func(s *TableState) { s.Filters = map[string]string{"status": "draft"} },
	}
	seen := map[string]bool{base.Key(): true}
	for i, change := range changes {
		s := base.Clone()
		change(&s)
		key := s.Key()
		assert.False(t, seen[key], "change %d collides", i)
		seen[key] = true
	}

	search := base.Clone()
	search.Search = "x"
	filter := base.Clone()
	filter.Filters = map[string]string{"search": "x"}
	assert.NotEqual(t, search.Key(), filter.Key())

	empty := base.Clone()
	empty.Filters = map[string]string{"status": ""}
	assert.Equal(t, base.Key(), empty.Key())
}

func TestTableState_Normalize(t *testing.T) {
	got := TableState{
		Pagination: Pagination{Current: 0, PageSize: 7},
		Sort:       Sort{SortOrder: "up"},
		Filters:    map[string]string{"a": ""},
	}.Normalize()
	assert.Equal(t, DefaultTableState(), got)

	kept := TableState{
		Pagination: Pagination{Current: 3, PageSize: 50},
		Sort:       Sort{SortField: "created", SortOrder: SortDesc},
	}
	assert.Equal(t, kept, kept.Normalize())
}

func TestTableState_Clone(t *testing.T) {
	s := DefaultTableState()
	s.Filters = map[string]string{"a": "1"}
	c := s.Clone()
	c.Filters["a"] = "2"
	assert.Equal(t, "1", s.Filters["a"])
}

func TestAreaFormData_Payload(t *testing.T) {
	tests := []struct {
		name        string
		description interface{}
		want        string
	}{
		{name: "string", description: "plain text", want: "plain text"},
		{name: "nil", description: nil, want: "{}"},
		{name: "structured", description: map[string]interface{}{"floor": 3}, want: `{"floor":3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAreaFormData()
			f.AreaID = "A1"
			f.Description = tt.description
			p, err := f.Payload()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Description)
			assert.Equal(t, StatusDraft, p.Status)
			assert.True(t, p.Enable)
		})
	}
}

func TestArea_Decode(t *testing.T) {
	body := `{"base64pk":"eHl6","area_id":"A1","area_name":"North","status":"active","enable":true,
		"is_removed":false,"description":"d","properties":{"k":[1,2]},
		"created":{"date":"2024-01-02","datetime":"2024-01-02 10:00:00","datetimezone":"+08:00",
		"time":"10:00:00","utc":"2024-01-02T02:00:00Z","zone":"Asia/Shanghai"},"modified":{}}`
	var a Area
	require.NoError(t, json.Unmarshal([]byte(body), &a))
	assert.Equal(t, "eHl6", a.Base64PK)
	assert.Equal(t, StatusActive, a.Status)
	assert.Equal(t, "2024-01-02", a.Created.Date)
	assert.JSONEq(t, `{"k":[1,2]}`, string(a.Properties))

	f := a.FormData()
	assert.Equal(t, &AreaFormData{AreaID: "A1", AreaName: "North", Status: StatusActive, Enable: true, Description: "d"}, f)
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusInactive.Valid())
	assert.False(t, Status("deleted").Valid())
	assert.False(t, Status("").Valid())
}
