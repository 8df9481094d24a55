package game

import (
	"fmt"
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

func (e *Engine) Log(level int, a ...interface{}) {
	if e.Logger == nil || level > e.LogLevel {
		return
	}

	e.Logger.Print(a...)
}

func (e *Engine) Logf(level int, format string, a ...interface{}) {
	if e.Logger == nil || level > e.LogLevel {
		return
	}

	e.Logger.Output(2, fmt.Sprintf(format, a...))
}
