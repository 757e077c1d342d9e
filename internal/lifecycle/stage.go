package lifecycle

import (
	"fmt"
	"strings"
)

// Stage is a named point in the host's boot/reload sequence.
type Stage int

// Stages in the order they occur within one boot/reload cycle. The zero
// value is deliberately not a stage.
const (
	StageModelLoad Stage = iota + 1
	StageClassUnload
	StageRouteLoad
	StagePrepare
)

var stageNames = map[Stage]string{
	StageModelLoad:   "model_load",
	StageClassUnload: "class_unload",
	StageRouteLoad:   "route_load",
	StagePrepare:     "prepare",
}

// Stages returns every stage in cycle order.
func Stages() []Stage {
	return []Stage{StageModelLoad, StageClassUnload, StageRouteLoad, StagePrepare}
}

// Valid reports whether s is one of the four lifecycle stages.
func (s Stage) Valid() bool {
	_, ok := stageNames[s]
	return ok
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ParseStage is the inverse of Stage.String.
func ParseStage(raw string) (Stage, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for s, name := range stageNames {
		if name == raw {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown lifecycle stage %q", raw)
}
