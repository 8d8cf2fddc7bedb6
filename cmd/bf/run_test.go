package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bf/batches"
	"github.com/reusee/bf/execs"
	"github.com/reusee/bf/programs"
)

const helloWorld = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`

func TestRunSingle(t *testing.T) {
	program, err := programs.Parse(helloWorld)
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	res, err := runSingle(program, execs.DefaultConfig(), strings.NewReader(""), out)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != execs.StatusHalted {
		t.Fatalf("got %v", res.Err)
	}
	if out.String() != "Hello World!\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRunSingleAbort(t *testing.T) {
	program, err := programs.Parse(",.<")
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	res, err := runSingle(program, execs.DefaultConfig(), strings.NewReader("x"), out)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != execs.StatusAborted {
		t.Fatalf("got %v", res.Status)
	}
	// output before the abort is kept
	if out.String() != "x" {
		t.Fatalf("got %q", out.String())
	}
	msg := new(strings.Builder)
	reportAbort(msg, res)
	if !strings.HasPrefix(msg.String(), "Runtime error: pointer underflow") {
		t.Fatalf("got %s", msg.String())
	}
}

func TestRunBatch(t *testing.T) {
	program, err := programs.Parse(",.")
	if err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)
	err = runBatch(t.Context(), batches.Runner{
		Program: program,
		Config:  execs.DefaultConfig(),
		Jobs:    2,
	}, strings.NewReader("{\"input\":[1]}\nbad\n"), out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %q", out.String())
	}
	if !strings.Contains(lines[0], `"status":"ok"`) || !strings.Contains(lines[1], `"status":"malformed_record"`) {
		t.Fatalf("got %q", out.String())
	}
}

func TestHandleError(t *testing.T) {
	buf := new(strings.Builder)
	code := func() (code int) {
		defer he(buf, &code)
		ce(ErrUsage)
		return 0
	}()
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if buf.String() != "Error: bad usage\n" {
		t.Fatalf("got %q", buf.String())
	}

	func() {
		defer func() {
			if p := recover(); p != "boom" {
				t.Fatalf("got %v", p)
			}
		}()
		var code int
		defer he(buf, &code)
		panic("boom")
	}()
}

func TestIsStdin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.b")
	if err := os.WriteFile(path, []byte("+"), 0644); err != nil {
		t.Fatal(err)
	}
	other := filepath.Join(dir, "input")
	if err := os.WriteFile(other, nil, 0644); err != nil {
		t.Fatal(err)
	}
	stdin, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()

	if !isStdin("-", stdin) {
		t.Fatal()
	}
	if !isStdin(path, stdin) {
		t.Fatal("same file")
	}
	if isStdin(other, stdin) {
		t.Fatal("other file")
	}
	if isStdin(filepath.Join(dir, "missing"), stdin) {
		t.Fatal("missing file")
	}
	if isStdin("http://example.com/prog.b", stdin) {
		t.Fatal("url")
	}
}
