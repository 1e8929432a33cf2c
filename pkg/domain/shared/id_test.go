package shared

import (
	"encoding/json"
	"testing"
)

func TestIDFromString(t *testing.T) {
	id := NewID()

	parsed, err := IDFromString(id.String())
	if err != nil {
		t.Fatalf("IDFromString() error = %v", err)
	}
	if !parsed.Equals(id) {
		t.Error("round-tripped ID should equal original")
	}

	if _, err := IDFromString("not-a-uuid"); err == nil {
		t.Error("IDFromString() should reject malformed input")
	}
	if _, err := IDFromString(""); err == nil {
		t.Error("IDFromString() should reject empty input")
	}
}

func TestID_IsZero(t *testing.T) {
	if !(ID{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if NewID().IsZero() {
		t.Error("fresh ID should not be zero")
	}
}

func TestID_JSON(t *testing.T) {
	id := NewID()

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded ID
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !decoded.Equals(id) {
		t.Error("JSON round trip should preserve the ID")
	}
}

func TestID_SQLValue(t *testing.T) {
	id := NewID()

	v, err := id.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var scanned ID
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !scanned.Equals(id) {
		t.Error("database round trip should preserve the ID")
	}
}
