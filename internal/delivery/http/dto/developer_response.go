package dto

import (
	"time"

	"tunitech/internal/domain/developer"

	"github.com/google/uuid"
)

type DeveloperResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	FullName         string    `json:"full_name"`
	ExperienceLevel  string    `json:"experience_level"`
	YearsExperience  int       `json:"years_experience"`
	TechnicalSkills  []string  `json:"technical_skills"`
	HourlyRate       *int      `json:"hourly_rate,omitempty"`
	IsApproved       bool      `json:"is_approved"`
	AvailableForWork bool      `json:"available_for_work"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromDeveloper(d developer.Developer) DeveloperResponse {
	return DeveloperResponse{
		ID:               d.ID,
		UserID:           d.UserID,
		FullName:         d.FullName,
		ExperienceLevel:  string(d.ExperienceLevel),
		YearsExperience:  d.YearsExperience,
		TechnicalSkills:  d.TechnicalSkills,
		HourlyRate:       d.HourlyRate,
		IsApproved:       d.IsApproved,
		AvailableForWork: d.AvailableForWork,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type DeveloperSkillResponse struct {
	SkillID         uuid.UUID `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	Proficiency     int       `json:"proficiency"`
	YearsExperience int       `json:"years_experience"`
}

func FromDeveloperSkills(skills []developer.DeveloperSkill) []DeveloperSkillResponse {
	out := make([]DeveloperSkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, DeveloperSkillResponse{
			SkillID:         s.SkillID,
			SkillName:       s.SkillName,
			Proficiency:     s.Proficiency,
			YearsExperience: s.YearsExperience,
		})
	}
	return out
}

type DeveloperIndustryResponse struct {
	IndustryID      uuid.UUID `json:"industry_id"`
	IndustryName    string    `json:"industry_name"`
	YearsExperience int       `json:"years_experience"`
}

func FromDeveloperIndustries(inds []developer.DeveloperIndustry) []DeveloperIndustryResponse {
	out := make([]DeveloperIndustryResponse, 0, len(inds))
	for _, in := range inds {
		out = append(out, DeveloperIndustryResponse{
			IndustryID:      in.IndustryID,
			IndustryName:    in.IndustryName,
			YearsExperience: in.YearsExperience,
		})
	}
	return out
}
