package request

import (
	"bytes"
	"encoding/json"
	"strconv"
)

const (
	msgString  = "Must be a string"
	msgArray   = "Must be an array of strings"
	msgBoolean = "Must be true, false, 1 or 0"
)

// fieldDecoder decodes a JSON object one key at a time and records a
// message for every key whose value has the wrong type, instead of
// stopping at the first one.
type fieldDecoder struct {
	raw    map[string]json.RawMessage
	errors map[string]string
}

// newFieldDecoder fails only when data is not a JSON object.
func newFieldDecoder(data []byte) (*fieldDecoder, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &fieldDecoder{raw: raw}, nil
}

func (d *fieldDecoder) fail(key, msg string) {
	if d.errors == nil {
		d.errors = map[string]string{}
	}
	d.errors[key] = msg
}

// decode unmarshals key into dst when present. null leaves dst untouched.
func (d *fieldDecoder) decode(key string, dst any, msg string) {
	value, ok := d.raw[key]
	if !ok {
		return
	}
	if err := json.Unmarshal(value, dst); err != nil {
		d.fail(key, msg)
	}
}

// decodeBool accepts true/false, 1/0 and "1"/"0"/"true"/"false".
// null leaves dst nil.
func (d *fieldDecoder) decodeBool(key string, dst **bool) {
	value, ok := d.raw[key]
	if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return
	}

	var b bool
	if err := json.Unmarshal(value, &b); err == nil {
		*dst = &b
		return
	}

	literal := string(bytes.TrimSpace(value))
	if s, err := strconv.Unquote(literal); err == nil {
		literal = s
	}
	switch literal {
	case "1", "true":
		b = true
		*dst = &b
	case "0", "false":
		*dst = &b
	default:
		d.fail(key, msgBoolean)
	}
}
