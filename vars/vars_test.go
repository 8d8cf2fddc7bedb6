package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %v", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %v", s)
	}
}

func TestDerefOrZero(t *testing.T) {
	if n := DerefOrZero[int](nil); n != 0 {
		t.Fatal()
	}
	i := 42
	if n := DerefOrZero(&i); n != 42 {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "Y", " yes ", "1", "on"} {
		if !StrToBool(str) {
			t.Fatalf("%q", str)
		}
	}
	for _, str := range []string{"false", "n", "0", "", "foo"} {
		if StrToBool(str) {
			t.Fatalf("%q", str)
		}
	}
}
