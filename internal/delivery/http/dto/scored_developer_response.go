package dto

import (
	"tunitech/internal/usecase"

	"github.com/google/uuid"
)

type ScoredDeveloperResponse struct {
	DeveloperID     uuid.UUID `json:"developer_id"`
	FullName        string    `json:"full_name"`
	ExperienceLevel string    `json:"experience_level"`
	YearsExperience int       `json:"years_experience"`
	TechnicalSkills []string  `json:"technical_skills"`
	MatchScore      int       `json:"match_score"`
}

func FromScoredDevelopers(devs []usecase.ScoredDeveloper) []ScoredDeveloperResponse {
	out := make([]ScoredDeveloperResponse, 0, len(devs))
	for _, d := range devs {
		out = append(out, ScoredDeveloperResponse{
			DeveloperID:     d.DeveloperID,
			FullName:        d.FullName,
			ExperienceLevel: d.ExperienceLevel,
			YearsExperience: d.YearsExperience,
			TechnicalSkills: d.TechnicalSkills,
			MatchScore:      d.MatchScore,
		})
	}
	return out
}
