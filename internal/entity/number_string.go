package entity

import (
	"bytes"
	"strconv"
)

// NumberString captures a numeric field that upstream APIs send either as a
// JSON string or as a bare number. null decodes to "".
type NumberString string

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumberString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*n = NumberString(s)
		return nil
	}
	*n = NumberString(data)
	return nil
}

// String returns the raw textual value.
func (n NumberString) String() string {
	return string(n)
}
