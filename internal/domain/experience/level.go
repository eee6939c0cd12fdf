package experience

import "strings"

// Level is the coarse seniority band used by both developer profiles and
// project requirements.
type Level string

const (
	Junior Level = "junior"
	Medior Level = "medior"
	Senior Level = "senior"
)

func Normalize(raw string) Level {
	return Level(strings.ToLower(strings.TrimSpace(raw)))
}

func (l Level) Valid() bool {
	switch l {
	case Junior, Medior, Senior:
		return true
	}
	return false
}
