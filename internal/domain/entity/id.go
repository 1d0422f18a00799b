package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexID is an identifier that the upstream backend serializes sometimes as a
// JSON string and sometimes as a number. It always marshals back as a string.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = FlexID(n.String())
		return nil
	}
	return fmt.Errorf("id is neither string nor number: %s", data)
}

func (id FlexID) String() string { return string(id) }

// Int64 returns the numeric value of the identifier, or an error when the
// backend issued a non-numeric one.
func (id FlexID) Int64() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}
