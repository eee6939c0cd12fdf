package matchscore

import (
	"math"
	"strings"
	"unicode"

	"tunitech/internal/domain/experience"
)

const (
	experienceWeight = 40
	skillWeight      = 60
)

type Requirement struct {
	ExperienceLevel experience.Level
	TechnicalSkills string
}

type Developer struct {
	ExperienceLevel experience.Level
	TechnicalSkills []string
}

// Calculate returns a compatibility score in [0,100] between one project
// requirement and one developer. The score is advisory, used for sorting and
// display only; it never gates a lifecycle action. Deterministic and
// side-effect free, missing input degrades to zero rather than erroring.
func Calculate(req Requirement, dev Developer) int {
	total := experienceComponent(req.ExperienceLevel, dev.ExperienceLevel) +
		skillComponent(req.TechnicalSkills, dev.TechnicalSkills)
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return total
}

// experienceComponent awards full credit on an exact level match and partial
// credit when the developer is over-qualified. The partial constants are an
// intentional product rule, not a derived formula.
func experienceComponent(required, offered experience.Level) int {
	if !required.Valid() || !offered.Valid() {
		return 0
	}
	if required == offered {
		return experienceWeight
	}
	switch required {
	case experience.Junior:
		if offered == experience.Medior || offered == experience.Senior {
			return 35
		}
	case experience.Medior:
		if offered == experience.Senior {
			return 25
		}
	}
	return 0
}

func skillComponent(requiredText string, devSkills []string) int {
	terms := tokenizeSkills(requiredText)
	if len(terms) == 0 {
		return 0
	}

	lowered := make([]string, 0, len(devSkills))
	for _, s := range devSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			lowered = append(lowered, s)
		}
	}

	matched := 0
	for _, term := range terms {
		if anySkillMatches(term, lowered) {
			matched++
		}
	}

	return int(math.Round(skillWeight * float64(matched) / float64(len(terms))))
}

// anySkillMatches uses bidirectional substring containment so partial and
// compound tech names still line up, e.g. "react" matches "React.js".
func anySkillMatches(term string, skills []string) bool {
	for _, s := range skills {
		if strings.Contains(s, term) || strings.Contains(term, s) {
			return true
		}
	}
	return false
}

func tokenizeSkills(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			terms = append(terms, f)
		}
	}
	return terms
}
