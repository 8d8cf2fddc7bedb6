package debugs

import (
	"errors"
	"testing"

	"github.com/reusee/bf/execs"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type state struct {
		Cells   []byte
		Pointer int
		hidden  int
	}
	s := &state{
		Cells:   []byte{1, 2},
		Pointer: 1,
	}
	stateDict := func() starlark.Value {
		d := starlark.NewDict(2)
		d.SetKey(starlark.String("Cells"), starlark.Bytes("\x01\x02"))
		d.SetKey(starlark.String("Pointer"), starlark.MakeInt(1))
		return d
	}

	cases := []struct {
		name  string
		input any
		want  starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("ab"), starlark.Bytes("ab")},
		{"string", "x", starlark.String("x")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-3), starlark.MakeInt(-3)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"float", 1.5, starlark.Float(1.5)},
		{"error", errors.New("boom"), starlark.String("boom")},
		{"stringer", execs.StatusHalted, starlark.String("halted")},
		{"policy", execs.EOFMax, starlark.String("max")},
		{"ints", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"nil slice", []int(nil), starlark.NewList(nil)},
		{"map", map[string]int{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", *s, stateDict()},
		{"pointer", s, stateDict()},
		{"nil pointer", (*state)(nil), starlark.None},
		{"nil error pointer", (*execs.AbortError)(nil), starlark.None},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := toStarlarkValue(c.input)
			eq, err := starlark.Equal(got, c.want)
			if err != nil {
				t.Fatal(err)
			}
			if !eq {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue(make(chan int))
	})
}
