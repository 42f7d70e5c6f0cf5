package services

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *RecordStore {
	t.Helper()
	return NewRecordStore(t.TempDir())
}

func TestReadAllMissingFile(t *testing.T) {
	rs := newTestStore(t)

	records, err := ReadAll[testRecord](rs, "nope.jsonl")
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty result, got %d records", len(records))
	}
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	rs := newTestStore(t)
	in := []testRecord{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}, {ID: "3", Name: "c"}}

	if err := WriteAll(rs, "r.jsonl", in); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	out, err := ReadAll[testRecord](rs, "r.jsonl")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: wrote %v, read %v", in, out)
	}

	// Rewriting what was read must be a fixed point.
	if err := WriteAll(rs, "r.jsonl", out); err != nil {
		t.Fatalf("second WriteAll failed: %v", err)
	}
	again, err := ReadAll[testRecord](rs, "r.jsonl")
	if err != nil {
		t.Fatalf("second ReadAll failed: %v", err)
	}
	if !reflect.DeepEqual(out, again) {
		t.Fatalf("re-read mismatch: %v vs %v", out, again)
	}
}

func TestWriteAllEndsWithNewline(t *testing.T) {
	rs := newTestStore(t)
	if err := WriteAll(rs, "r.jsonl", []testRecord{{ID: "1"}}); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(rs.Dir, "r.jsonl"))
	if err != nil {
		t.Fatalf("reading file back: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Fatal("expected file to end with a newline")
	}
}

func TestReadAllSkipsMalformedLines(t *testing.T) {
	rs := newTestStore(t)
	content := `{"id":"1","name":"a"}
not json at all

{"id":"2","name":"b"}
`
	if err := os.WriteFile(filepath.Join(rs.Dir, "r.jsonl"), []byte(content), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	records, err := ReadAll[testRecord](rs, "r.jsonl")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "1" || records[1].ID != "2" {
		t.Fatalf("unexpected records: %v", records)
	}
}

func TestAppendOneCreatesParents(t *testing.T) {
	rs := newTestStore(t)

	if err := AppendOne(rs, filepath.Join("nested", "deep", "r.jsonl"), testRecord{ID: "1"}); err != nil {
		t.Fatalf("AppendOne failed: %v", err)
	}
	records, err := ReadAll[testRecord](rs, filepath.Join("nested", "deep", "r.jsonl"))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 || records[0].ID != "1" {
		t.Fatalf("unexpected records: %v", records)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	rs := newTestStore(t)
	for _, id := range []string{"1", "2", "3"} {
		if err := AppendOne(rs, "r.jsonl", testRecord{ID: id}); err != nil {
			t.Fatalf("AppendOne failed: %v", err)
		}
	}
	records, err := ReadAll[testRecord](rs, "r.jsonl")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	for i, want := range []string{"1", "2", "3"} {
		if records[i].ID != want {
			t.Fatalf("expected record %d to be %s, got %s", i, want, records[i].ID)
		}
	}
}

func TestMutateAbortsOnError(t *testing.T) {
	rs := newTestStore(t)
	if err := WriteAll(rs, "r.jsonl", []testRecord{{ID: "1"}}); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	err := Mutate(rs, "r.jsonl", func(records []testRecord) ([]testRecord, error) {
		return nil, ErrConflict
	})
	if err == nil {
		t.Fatal("expected error from Mutate")
	}

	records, err := ReadAll[testRecord](rs, "r.jsonl")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected aborted mutate to leave the file untouched, got %v", records)
	}
}
