package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestNullable_AbsentNullAndValue(t *testing.T) {
	type payload struct {
		Remarks Nullable[string] `json:"remarks"`
	}

	var absent payload
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unmarshal absent: %v", err)
	}
	if absent.Remarks.Set {
		t.Error("absent key must not mark the field as set")
	}

	var withNull payload
	if err := json.Unmarshal([]byte(`{"remarks": null}`), &withNull); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !withNull.Remarks.Set {
		t.Error("explicit null must mark the field as set")
	}
	if withNull.Remarks.Value != nil {
		t.Errorf("explicit null must leave Value nil, got %v", *withNull.Remarks.Value)
	}

	var withValue payload
	if err := json.Unmarshal([]byte(`{"remarks": "looks fine"}`), &withValue); err != nil {
		t.Fatalf("unmarshal value: %v", err)
	}
	if !withValue.Remarks.Set || withValue.Remarks.Value == nil {
		t.Fatal("value must mark the field as set with a non-nil Value")
	}
	if *withValue.Remarks.Value != "looks fine" {
		t.Errorf("Value = %q, want %q", *withValue.Remarks.Value, "looks fine")
	}
}

func TestNullable_NumericValue(t *testing.T) {
	type payload struct {
		ManagerID Nullable[int64] `json:"managerId"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"managerId": 42}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.ManagerID.Set || p.ManagerID.Value == nil || *p.ManagerID.Value != 42 {
		t.Errorf("got Set=%v Value=%v, want Set=true Value=42", p.ManagerID.Set, p.ManagerID.Value)
	}
}
