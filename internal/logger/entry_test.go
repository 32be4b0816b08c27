package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func captureEntryOutput(t *testing.T, log func()) map[string]interface{} {
	t.Helper()

	var buf bytes.Buffer
	old := GetDefault()
	SetDefaultLogger(New(&Config{Level: "debug", Format: "json", Output: &buf, ServiceName: "test"}))
	defer SetDefaultLogger(old)

	log()

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	return record
}

func TestEntry_MetricFields(t *testing.T) {
	record := captureEntryOutput(t, func() {
		With(Fields{"component": "api"}).
			WithStatus(200).
			WithDuration(42).
			WithSize(1024).
			WithCount(3).
			Info(nil, "request %s", "done")
	})

	if record["message"] != "request done" {
		t.Errorf("expected formatted message, got %v", record["message"])
	}
	expected := map[string]float64{
		FieldStatus:     200,
		FieldDurationMs: 42,
		FieldSize:       1024,
		FieldCount:      3,
	}
	for field, want := range expected {
		got, ok := record[field].(float64)
		if !ok || got != want {
			t.Errorf("field %s: expected %v, got %v", field, want, record[field])
		}
	}
	if record["component"] != "api" {
		t.Errorf("expected component field, got %v", record["component"])
	}
}

func TestEntry_WithDoesNotMutate(t *testing.T) {
	base := With(Fields{"a": 1})
	derived := base.With(Fields{"b": 2})

	if _, ok := base.fields["b"]; ok {
		t.Error("deriving an entry must not mutate its parent")
	}
	if derived.fields["a"] != 1 || derived.fields["b"] != 2 {
		t.Errorf("unexpected derived fields: %v", derived.fields)
	}
}
