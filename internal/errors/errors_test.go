package errors

import (
	"fmt"
	"io"
	"testing"
)

func TestIsTypeThroughWrapping(t *testing.T) {
	base := Generation("no compatible mainboard for cpu 13400f")
	wrapped := fmt.Errorf("generate: %w", base)

	if !IsType(wrapped, TypeGeneration) {
		t.Error("IsType should see through fmt wrapping")
	}
	if IsType(wrapped, TypeInput) {
		t.Error("IsType matched the wrong type")
	}
	if IsType(io.EOF, TypeGeneration) {
		t.Error("plain errors have no type")
	}
}

func TestPersistenceCarriesOperation(t *testing.T) {
	err := Persistence("DELETE /inventory", "cpu/12400f", 503, io.ErrUnexpectedEOF)

	if err.Type != TypePersistence {
		t.Fatalf("type = %s", err.Type)
	}
	if err.Context["op"] != "DELETE /inventory" || err.Context["key"] != "cpu/12400f" || err.Context["status"] != 503 {
		t.Errorf("context = %v", err.Context)
	}
	if err.Unwrap() != io.ErrUnexpectedEOF {
		t.Error("cause should unwrap")
	}

	noResponse := Persistence("GET /configs", "", 0, io.EOF)
	if _, ok := noResponse.Context["status"]; ok {
		t.Error("zero status should be omitted")
	}
}

func TestErrorString(t *testing.T) {
	if got := Input("budget must be positive").Error(); got != "[INPUT_ERROR] budget must be positive" {
		t.Errorf("Error() = %q", got)
	}
	if got := Internal("boom", io.EOF).Error(); got != "[INTERNAL_ERROR] boom: EOF" {
		t.Errorf("Error() = %q", got)
	}
}
