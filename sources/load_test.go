package sources

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(defs...)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.b")
	if err := os.WriteFile(path, []byte("+[.]"), 0644); err != nil {
		t.Fatal(err)
	}
	testScope(t).Call(func(
		load Load,
	) {
		content, err := load(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "+[.]" {
			t.Fatalf("got %s", content)
		}
		_, err = load(t.Context(), filepath.Join(t.TempDir(), "missing.b"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadStdin(t *testing.T) {
	testScope(t, func() Stdin {
		return strings.NewReader(",.")
	}).Call(func(
		load Load,
	) {
		content, err := load(t.Context(), "-")
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != ",." {
			t.Fatalf("got %s", content)
		}
	})
}

func TestLoadHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/prog.b" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "++.")
	}))
	defer server.Close()

	testScope(t).Call(func(
		load Load,
	) {
		content, err := load(t.Context(), server.URL+"/prog.b")
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "++." {
			t.Fatalf("got %s", content)
		}
		_, err = load(t.Context(), server.URL+"/missing.b")
		if !errors.Is(err, ErrBadStatus) {
			t.Fatalf("got %v", err)
		}
	})
}
