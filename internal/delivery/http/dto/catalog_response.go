package dto

import (
	"tunitech/internal/repository"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
}

func FromSkills(skills []repository.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return out
}

type IndustryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromIndustries(inds []repository.Industry) []IndustryResponse {
	out := make([]IndustryResponse, 0, len(inds))
	for _, in := range inds {
		out = append(out, IndustryResponse{ID: in.ID, Name: in.Name})
	}
	return out
}
