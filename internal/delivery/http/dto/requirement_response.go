package dto

import (
	"time"

	"tunitech/internal/domain/requirement"

	"github.com/google/uuid"
)

type RequirementResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ExperienceLevel string    `json:"experience_level"`
	TechnicalSkills string    `json:"technical_skills"`
	EmploymentType  string    `json:"employment_type"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromRequirement(pr requirement.ProjectRequirement) RequirementResponse {
	return RequirementResponse{
		ID:              pr.ID,
		CustomerID:      pr.CustomerID,
		Title:           pr.Title,
		Description:     pr.Description,
		ExperienceLevel: string(pr.ExperienceLevel),
		TechnicalSkills: pr.TechnicalSkills,
		EmploymentType:  pr.EmploymentType,
		IsActive:        pr.IsActive,
		CreatedAt:       pr.CreatedAt,
		UpdatedAt:       pr.UpdatedAt,
	}
}

func FromRequirements(prs []requirement.ProjectRequirement) []RequirementResponse {
	out := make([]RequirementResponse, 0, len(prs))
	for _, pr := range prs {
		out = append(out, FromRequirement(pr))
	}
	return out
}

type SkillRequirementResponse struct {
	SkillID      uuid.UUID `json:"skill_id"`
	SkillName    string    `json:"skill_name"`
	Importance   int       `json:"importance"`
	MinimumYears int       `json:"minimum_years"`
}

func FromSkillRequirements(srs []requirement.SkillRequirement) []SkillRequirementResponse {
	out := make([]SkillRequirementResponse, 0, len(srs))
	for _, sr := range srs {
		out = append(out, SkillRequirementResponse{
			SkillID:      sr.SkillID,
			SkillName:    sr.SkillName,
			Importance:   sr.Importance,
			MinimumYears: sr.MinimumYears,
		})
	}
	return out
}

type IndustryRequirementResponse struct {
	IndustryID   uuid.UUID `json:"industry_id"`
	IndustryName string    `json:"industry_name"`
	Required     bool      `json:"required"`
}

func FromIndustryRequirements(irs []requirement.IndustryRequirement) []IndustryRequirementResponse {
	out := make([]IndustryRequirementResponse, 0, len(irs))
	for _, ir := range irs {
		out = append(out, IndustryRequirementResponse{
			IndustryID:   ir.IndustryID,
			IndustryName: ir.IndustryName,
			Required:     ir.Required,
		})
	}
	return out
}
