package batches

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Bytes is encoded as a JSON array of integers in [0, 255].
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(b)*4)
	buf = append(buf, '[')
	for i, c := range b {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(c), 10)
	}
	buf = append(buf, ']')
	return buf, nil
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	if ints == nil {
		*b = nil
		return nil
	}
	ret := make(Bytes, len(ints))
	for i, n := range ints {
		if n < 0 || n > 255 {
			return fmt.Errorf("byte value %d at index %d out of range [0, 255]", n, i)
		}
		ret[i] = byte(n)
	}
	*b = ret
	return nil
}
