package sources

import (
	"github.com/reusee/bf/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets nets.Module
}
