package batches

type Status string

const (
	StatusOK              Status = "ok"
	StatusLimitExceeded   Status = "limit_exceeded"
	StatusTapeOutOfBounds Status = "tape_out_of_bounds"
	StatusMalformedRecord Status = "malformed_record"
)

type Result struct {
	ID     string `json:"id,omitempty"`
	Status Status `json:"status"`
	Output Bytes  `json:"output"`
	Detail string `json:"detail,omitempty"`
	// final machine state, trailing zero cells trimmed
	Tape       Bytes `json:"tape,omitempty"`
	Pointer    *int  `json:"pointer,omitempty"`
	Operations int   `json:"operations,omitempty"`
}

type Stats struct {
	Records  int
	Statuses map[Status]int
}

func (s *Stats) add(result Result) {
	if s.Statuses == nil {
		s.Statuses = make(map[Status]int)
	}
	s.Records++
	s.Statuses[result.Status]++
}
