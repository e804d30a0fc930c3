package json

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "string", value: "desc", want: "desc"},
		{name: "nil", value: nil, want: "{}"},
		{name: "map", value: map[string]interface{}{"floor": 3}, want: `{"floor":3}`},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "raw", value: RawMessage(`{"k":1}`), want: `{"k":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stringify(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringify_RoundTrip(t *testing.T) {
	in := map[string]interface{}{
		"zone":  "north",
		"tags":  []interface{}{"a", "b"},
		"inner": map[string]interface{}{"enabled": true},
	}
	s, err := Stringify(in)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, Unmarshal([]byte(s), &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
