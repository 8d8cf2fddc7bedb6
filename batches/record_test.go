package batches

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/reusee/bf/execs"
)

func TestBytesJSON(t *testing.T) {
	data, err := json.Marshal(Bytes{0, 1, 255})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[0,1,255]" {
		t.Fatalf("got %s", data)
	}
	data, err = json.Marshal(Bytes(nil))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("got %s", data)
	}

	var b Bytes
	if err := json.Unmarshal([]byte("[3, 4]"), &b); err != nil {
		t.Fatal(err)
	}
	if len(b) != 2 || b[0] != 3 || b[1] != 4 {
		t.Fatalf("got %v", b)
	}
	for _, bad := range []string{"[-1]", "[256]", `"AAE="`, "[1.5]"} {
		if err := json.Unmarshal([]byte(bad), &b); err == nil {
			t.Fatalf("should error: %s", bad)
		}
	}
	b = Bytes{1}
	if err := json.Unmarshal([]byte("null"), &b); err != nil {
		t.Fatal(err)
	}
	if b != nil {
		t.Fatalf("got %v", b)
	}
}

func TestDecodeRecord(t *testing.T) {
	record, err := DecodeRecord([]byte(`  {"id":"x","input":[1,2],"tape":[5],"pointer":0,"config":{"eof_policy":"zero","operation_limit":10}}` + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if record.ID != "x" || len(record.Input) != 2 || record.Tape[0] != 5 {
		t.Fatalf("got %+v", record)
	}
	if record.Pointer == nil || *record.Pointer != 0 {
		t.Fatal()
	}
	if *record.Config.EOFPolicy != execs.EOFZero || *record.Config.OperationLimit != 10 {
		t.Fatalf("got %+v", record.Config)
	}

	record, err = DecodeRecord([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if record.Input != nil || record.Config != nil {
		t.Fatalf("got %+v", record)
	}

	for _, bad := range []string{
		"",
		"1",
		`"str"`,
		"[]",
		"{",
		"\xc3\x28",
		`{"input":"abc"}`,
		`{"pointer":"1"}`,
	} {
		if _, err := DecodeRecord([]byte(bad)); !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("got %v for %q", err, bad)
		}
	}
}

func TestRecoverID(t *testing.T) {
	if id := recoverID([]byte(`{"id":"a","input":[999]}`)); id != "a" {
		t.Fatalf("got %q", id)
	}
	if id := recoverID([]byte(`{"id":`)); id != "" {
		t.Fatalf("got %q", id)
	}
	if id := recoverID([]byte(`{"id":1}`)); id != "" {
		t.Fatalf("got %q", id)
	}
}

func TestApplyConfig(t *testing.T) {
	base := execs.DefaultConfig()
	base.OperationLimit = 50

	config, err := Record{}.ApplyConfig(base)
	if err != nil {
		t.Fatal(err)
	}
	if config != base {
		t.Fatalf("got %+v", config)
	}

	size := 10
	policy := execs.EOFMax
	config, err = Record{
		Config: &RecordConfig{
			MemorySize: &size,
			EOFPolicy:  &policy,
		},
	}.ApplyConfig(base)
	if err != nil {
		t.Fatal(err)
	}
	if config.MemorySize != 10 || config.EOFPolicy != execs.EOFMax || config.OperationLimit != 50 {
		t.Fatalf("got %+v", config)
	}

	for _, n := range []int{0, -1, execs.MaxMemorySize + 1} {
		_, err := Record{
			Config: &RecordConfig{
				MemorySize: &n,
			},
		}.ApplyConfig(base)
		if !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("got %v", err)
		}
	}
	zero := 0
	_, err = Record{
		Config: &RecordConfig{
			OperationLimit: &zero,
		},
	}.ApplyConfig(base)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("got %v", err)
	}
}
