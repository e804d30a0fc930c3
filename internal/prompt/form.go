package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"areaadmin/internal/model"
	"areaadmin/internal/service/area"
	"areaadmin/pkg/json"
)

// FillForm walks the user through every editable field of f. Each answer
// is checked against the form rules before the next question.
func FillForm(ctx context.Context, d Driver, f *area.FormView) error {
	values := f.Values()
	if !f.IsEdit() {
		id, err := d.Input(ctx, InputConfig{
			Message:   "Area ID",
			Default:   values.AreaID,
			Validator: fieldValidator(f, "area_id", func(s string) error { return f.SetAreaID(s) }),
		})
		if err != nil {
			return err
		}
		if err = f.SetAreaID(id); err != nil {
			return err
		}
	}

	name, err := d.Input(ctx, InputConfig{
		Message:   "Area Name",
		Default:   values.AreaName,
		Validator: fieldValidator(f, "area_name", f.SetAreaName),
	})
	if err != nil {
		return err
	}
	if err = f.SetAreaName(name); err != nil {
		return err
	}

	options := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		options[i] = s.String()
	}
	status, err := d.Select(ctx, SelectConfig{Message: "Status", Options: options, Default: values.Status.String()})
	if err != nil {
		return err
	}
	if err = f.SetStatus(model.Status(status)); err != nil {
		return err
	}

	enable, err := d.Confirm(ctx, ConfirmConfig{Message: "Active", Default: values.Enable})
	if err != nil {
		return err
	}
	if err = f.SetEnable(enable); err != nil {
		return err
	}

	var current string
	if values.Description != nil {
		current, _ = json.Stringify(values.Description)
	}
	text, err := d.TextArea(ctx, TextAreaConfig{
		Message: "Description",
		Default: current,
		Help:    "free text, a JSON object or array is sent as structured data",
	})
	if err != nil {
		return err
	}
	return f.SetDescription(Description(text))
}

// Description keeps free text as is. A JSON object or array is kept as
// raw JSON, byte for byte, so it is sent as typed.
func Description(text string) interface{} {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !gjson.Valid(trimmed) {
		return text
	}
	if result := gjson.Parse(trimmed); !(result.IsObject() || result.IsArray()) {
		return text
	}
	return json.RawMessage(trimmed)
}

// fieldValidator applies the answer and reports the form's message for field
func fieldValidator(f *area.FormView, field string, set func(string) error) func(string) error {
	return func(s string) error {
		if err := set(s); err != nil {
			return err
		}
		if messages := f.Validate()[field]; len(messages) != 0 {
			return errors.New(messages[0])
		}
		return nil
	}
}
