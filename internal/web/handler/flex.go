package handler

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotScalar is returned when a FlexString is given an object or array.
var ErrNotScalar = errors.New("value must be a string, number or boolean")

// FlexString accepts a JSON string, number or boolean and keeps its text.
// Numbers keep their literal form, null becomes the empty string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*f = FlexString(s)
	case '{', '[':
		return ErrNotScalar
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			*f = FlexString(n)
			return nil
		}

		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return ErrNotScalar
		}

		*f = FlexString(string(data))
	}

	return nil
}

// String returns the text value.
func (f FlexString) String() string {
	return string(f)
}
