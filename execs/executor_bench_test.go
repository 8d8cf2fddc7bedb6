package execs

import (
	"testing"

	"github.com/reusee/bf/programs"
	"github.com/reusee/bf/streams"
)

func BenchmarkExecutor_NestedLoops(b *testing.B) {
	program, err := programs.Parse(
		"++++++++[>++++++++[>++++++++[>+<-]<-]<-]", // 8*8*8 inner iterations
	)
	if err != nil {
		b.Fatal(err)
	}
	config := DefaultConfig()
	config.MemorySize = 8
	for b.Loop() {
		res := Execute(program, config, nil, nil)
		if res.Status != StatusHalted {
			b.Fatal(res.Err)
		}
	}
}

func BenchmarkExecutor_Echo(b *testing.B) {
	program, err := programs.Parse(",[.,]")
	if err != nil {
		b.Fatal(err)
	}
	input := make([]byte, 4096)
	for i := range input {
		input[i] = byte(i%255) + 1
	}
	config := DefaultConfig()
	config.EOFPolicy = EOFZero
	for b.Loop() {
		src := streams.Bytes(input)
		var sink streams.Buffer
		Execute(program, config, &src, &sink)
	}
}
