package client

import (
	"fmt"
	"regexp"
	"strings"

	"areaadmin/pkg/json"
)

type TransportContent struct {
	Request  string `json:"request"`
	Response string `json:"response"`
	Status   string `json:"status"`
}

var defaultMasked = []string{"Cookie", DefaultCSRFHeader, "Authorization"}

// NewHeaderMasker hides the values of the given headers in a curl command
func NewHeaderMasker(headers ...string) func(string) string {
	if len(headers) == 0 {
		return func(s string) string { return s }
	}
	quoted := make([]string, len(headers))
	for i, h := range headers {
		quoted[i] = regexp.QuoteMeta(h)
	}
	match := regexp.MustCompile(fmt.Sprintf(`(?i)(-H '(?:%s): )[^']*'`, strings.Join(quoted, "|")))
	return func(s string) string {
		return match.ReplaceAllString(s, "${1}******'")
	}
}

func FormatContent(content *TransportContent, mask func(string) string) string {
	if mask != nil {
		content.Request = mask(content.Request)
	}
	result, _ := json.Marshal(content)
	return string(result)
}
