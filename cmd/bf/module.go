package main

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bfconfigs.Module
	Sources sources.Module
	Debugs  debugs.Module
}
