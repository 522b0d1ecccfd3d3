// Package models defines the persisted record types of the client:
// the user profile with its heritage record, the media vault, feed posts,
// conversations and the activity log. JSON field names match the shapes
// written by earlier releases so old local data keeps loading.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexID is an identifier that earlier releases persisted either as a JSON
// number or as a string. It always marshals back as a string.
type FlexID string

func (id FlexID) String() string { return string(id) }

func (id FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		*id = ""
	case string:
		*id = FlexID(value)
	case float64:
		*id = FlexID(strconv.FormatFloat(value, 'f', -1, 64))
	default:
		return fmt.Errorf("invalid id type %T", v)
	}
	return nil
}

// Matches reports whether two identifiers refer to the same record.
// Besides exact equality it tolerates the numeric-vs-string drift left
// behind by old persisted data: "42" matches "42.0".
func (id FlexID) Matches(other FlexID) bool {
	if id == "" || other == "" {
		return id == other
	}
	if id == other {
		return true
	}
	a, errA := strconv.ParseFloat(string(id), 64)
	b, errB := strconv.ParseFloat(string(other), 64)
	return errA == nil && errB == nil && a == b
}
