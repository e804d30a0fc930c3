package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer
	columns := []Column{{Field: "area_id", Title: "ID"}, {Field: "enable", Title: "Active"}, {Field: "missing"}}
	RenderList(&buf, columns, []map[string]interface{}{
		{"area_id": "A1", "enable": true, "other": "hidden"},
		{"area_id": "A2", "enable": false},
	}, "Total 2 items")
	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "ACTIVE")
	assert.Contains(t, out, "MISSING")
	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "false")
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Total 2 items"))
	assert.Less(t, strings.Index(out, "A1"), strings.Index(out, "A2"))
}

func TestRenderList_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderList(&buf, []Column{{Field: "area_id", Title: "ID"}}, nil, "")
	assert.Contains(t, buf.String(), "ID")
}

func TestRenderList_Colors(t *testing.T) {
	var buf bytes.Buffer
	columns := []Column{{Field: "status", Colors: func(string) text.Colors { return text.Colors{text.FgGreen} }}}
	RenderList(&buf, columns, []map[string]interface{}{{"status": "active"}}, "")
	assert.Contains(t, buf.String(), text.Colors{text.FgGreen}.Sprint("active"))
}

func TestRenderShow(t *testing.T) {
	var buf bytes.Buffer
	RenderShow(&buf, []Column{{Field: "area_name", Title: "Name"}, {Field: "area_id", Title: "ID"}},
		map[string]interface{}{"area_id": "A1", "area_name": "North", "properties": map[string]int{"x": 1}})
	out := buf.String()
	assert.Less(t, strings.Index(out, "North"), strings.Index(out, "A1"))
	assert.NotContains(t, out, "properties")
}
