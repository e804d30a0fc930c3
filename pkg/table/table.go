package table

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"areaadmin/pkg/json"
)

const (
	DefaultTransverseStringLength = 64
	DefaultPortraitStringLength   = 128
)

// Column names one printed field; Title defaults to Field
type Column struct {
	Field string
	Title string
	// Colors picks the cell colours from the cell text
	Colors func(value string) text.Colors
}

func (c Column) title() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Field
}

// RenderList 打印list操作数据为ASCII表格，columns控制列及列从左到右的显示顺序
func RenderList(w io.Writer, columns []Column, data []map[string]interface{}, caption string) {
	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c.title()
	}
	rows := make([]table.Row, len(data))
	for i, d := range data {
		row := make(table.Row, len(columns))
		for j, c := range columns {
			cell := text.WrapHard(toString(d[c.Field]), DefaultTransverseStringLength)
			if c.Colors != nil {
				cell = c.Colors(cell).Sprint(cell)
			}
			row[j] = cell
		}
		rows[i] = row
	}
	t := newWriter(w, header, rows)
	if caption != "" {
		t.SetCaption(caption)
	}
	t.Render()
}

// RenderShow 打印show操作数据为ASCII表格，columns控制字段从上到下出现的顺序
func RenderShow(w io.Writer, columns []Column, data map[string]interface{}) {
	header := table.Row{"Field", "Value"}
	rows := make([]table.Row, 0, len(columns))
	for _, c := range columns {
		value, ok := data[c.Field]
		if !ok {
			continue
		}
		rows = append(rows, table.Row{c.title(), text.WrapHard(toString(value), DefaultPortraitStringLength)})
	}
	newWriter(w, header, rows).Render()
}

func newWriter(w io.Writer, header table.Row, rows []table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(header)
	t.AppendRows(rows)
	return t
}

func toString(d interface{}) string {
	switch v := d.(type) {
	case nil:
		return ""
	case bool:
		return fmt.Sprintf("%t", v)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int, int64:
		return fmt.Sprintf("%d", v)
	default:
		j, _ := json.Marshal(d)
		return string(j)
	}
}
