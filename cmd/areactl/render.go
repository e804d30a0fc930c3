package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"areaadmin/internal/model"
	"areaadmin/pkg/table"
)

var statusColors = map[model.Status]text.Colors{
	model.StatusDraft:    {text.FgBlue},
	model.StatusActive:   {text.FgGreen},
	model.StatusInactive: {text.FgHiRed},
}

func statusColor(value string) text.Colors {
	return statusColors[model.Status(strings.ToLower(value))]
}

var listColumns = []table.Column{
	{Field: "area_id", Title: "ID"},
	{Field: "area_name", Title: "Name"},
	{Field: "status", Title: "Status", Colors: statusColor},
	{Field: "enable", Title: "Active"},
	{Field: "created_date", Title: "Created Date"},
	{Field: "modified_date", Title: "Modified Date"},
	{Field: "base64pk", Title: "Key"},
}

var showColumns = []table.Column{
	{Field: "base64pk", Title: "Key"},
	{Field: "area_id", Title: "ID"},
	{Field: "area_name", Title: "Name"},
	{Field: "status", Title: "Status"},
	{Field: "enable", Title: "Active"},
	{Field: "description", Title: "Description"},
	{Field: "properties", Title: "Properties"},
	{Field: "created", Title: "Created"},
	{Field: "modified", Title: "Modified"},
}

func areaRow(a *model.Area) map[string]interface{} {
	return map[string]interface{}{
		"base64pk":      a.Base64PK,
		"area_id":       a.AreaID,
		"area_name":     a.AreaName,
		"status":        strings.ToUpper(a.Status.String()),
		"enable":        a.Enable,
		"description":   a.Description,
		"properties":    string(a.Properties),
		"created_date":  a.Created.Date,
		"modified_date": a.Modified.Date,
		"created":       a.Created.Datetime + " " + a.Created.Zone,
		"modified":      a.Modified.Datetime + " " + a.Modified.Zone,
	}
}

func renderList(w io.Writer, rows []*model.Area, total int) {
	data := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		data[i] = areaRow(row)
	}
	table.RenderList(w, listColumns, data, fmt.Sprintf("Total %d items", total))
}

func renderArea(w io.Writer, a *model.Area) {
	table.RenderShow(w, showColumns, areaRow(a))
}

func renderFieldErrors(w io.Writer, fields map[string][]string) {
	for _, line := range strings.Split(fieldLines(fields), "\n") {
		if line != "" {
			fmt.Fprintln(w, "  "+line)
		}
	}
}
