package json

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(input interface{}) ([]byte, error) {
	return api.Marshal(input)
}

func Unmarshal(input []byte, data interface{}) error {
	return api.Unmarshal(input, data)
}

// DecodeUseNumber keeps numbers as json.Number when data has no concrete
// type, so large integers survive
func DecodeUseNumber(reader io.Reader, data interface{}) error {
	d := api.NewDecoder(reader)
	d.UseNumber()
	return d.Decode(data)
}

// Stringify returns strings unchanged and JSON-encodes everything else.
// A nil value encodes as an empty object.
func Stringify(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "{}", nil
	case RawMessage:
		return string(v), nil
	}
	content, err := api.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// RawMessage is a raw encoded JSON value.
// It implements Marshaler and Unmarshaler and can
// be used to delay JSON decoding or precompute a JSON encoding.
type RawMessage []byte

// MarshalJSON returns m as the JSON encoding of m.
func (m RawMessage) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return m, nil
}

// UnmarshalJSON sets *m to a copy of data.
func (m *RawMessage) UnmarshalJSON(data []byte) error {
	if m == nil {
		return errors.New("json.RawMessage: UnmarshalJSON on nil pointer")
	}
	*m = append((*m)[0:0], data...)
	return nil
}
