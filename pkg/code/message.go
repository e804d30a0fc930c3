package code

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// Operation names a user action for message rendering
type Operation struct {
	Verb     string
	Gerund   string
	Resource string
}

// Failed short form, e.g. "Failed to delete area"
func (o Operation) Failed() string {
	return fmt.Sprintf("Failed to %s %s", o.Verb, o.Resource)
}

// Describe renders err as the human readable notification for o.
func (o Operation) Describe(err error) string {
	e := From(err)
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindHTTP:
		if e.StatusCode >= 400 && e.StatusCode < 500 {
			if summary, ok := Summary(e.Body); ok {
				return fmt.Sprintf("%s: %s", o.Failed(), summary)
			}
		}
		return fmt.Sprintf("%s: %d %s", o.Failed(), e.StatusCode, e.Status)
	case KindTransport:
		return NetworkMessage
	case KindValidation:
		return fmt.Sprintf("%s: %s", o.Failed(), FieldSummary(e.Fields))
	default:
		msg := "unknown error"
		if e.Err != nil {
			msg = e.Err.Error()
		}
		return fmt.Sprintf("Error %s %s: %s", o.Gerund, o.Resource, msg)
	}
}

// Summary flattens a JSON object body into "field: message, field: message"
// keeping the body's key order. Lists are joined with ",".
func Summary(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	result := gjson.ParseBytes(body)
	if !result.IsObject() {
		return "", false
	}
	var parts []string
	result.ForEach(func(key, value gjson.Result) bool {
		parts = append(parts, key.String()+": "+flatten(value))
		return true
	})
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

func flatten(value gjson.Result) string {
	switch {
	case value.IsArray():
		items := value.Array()
		list := make([]string, len(items))
		for i, item := range items {
			if item.Type == gjson.Null {
				continue
			}
			list[i] = flatten(item)
		}
		return strings.Join(list, ",")
	case value.Type == gjson.String:
		return value.String()
	default:
		return value.Raw
	}
}

// FieldSummary renders validation fields sorted by name
func FieldSummary(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(fields[name], ","))
	}
	return strings.Join(parts, ", ")
}
