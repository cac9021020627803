package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexID is a row ID in a request body. Clients send either a JSON number or
// a numeric string, so both are accepted. Null and "" decode to zero, which
// the services report as a missing field.
type FlexID uint64

// UnmarshalJSON implements json.Unmarshaler
func (id *FlexID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = 0
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*id = 0
			return nil
		}
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}

	*id = FlexID(v)
	return nil
}

// Uint64 returns the ID as stored
func (id FlexID) Uint64() uint64 {
	return uint64(id)
}

// IDs converts a list of request IDs to row IDs
func IDs(ids []FlexID) []uint64 {
	if ids == nil {
		return nil
	}

	result := make([]uint64, len(ids))
	for i, id := range ids {
		result[i] = id.Uint64()
	}
	return result
}

// OptionalIDs converts an optional list, keeping nil as "not supplied"
func OptionalIDs(ids *[]FlexID) *[]uint64 {
	if ids == nil {
		return nil
	}

	result := IDs(*ids)
	if result == nil {
		result = []uint64{}
	}
	return &result
}
