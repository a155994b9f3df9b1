// Package jsonutil holds small JSON decoding helpers shared by the request
// DTOs.
package jsonutil

import "encoding/json"

// Nullable distinguishes an absent JSON field from an explicit null. Set is
// true whenever the key was present in the payload; Value is nil for an
// explicit null. encoding/json never reports key presence through plain
// pointer fields, so partial updates that must support "set this column to
// NULL" decode through this wrapper instead.
type Nullable[T any] struct {
	Value *T
	Set   bool
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}
