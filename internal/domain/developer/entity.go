package developer

import (
	"time"

	"tunitech/internal/domain/experience"

	"github.com/google/uuid"
)

type Developer struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	FullName         string
	ExperienceLevel  experience.Level
	YearsExperience  int
	TechnicalSkills  []string
	HourlyRate       *int
	IsApproved       bool
	AvailableForWork bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type DeveloperSkill struct {
	ID              uuid.UUID
	DeveloperID     uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	Proficiency     int
	YearsExperience int
}

type DeveloperIndustry struct {
	ID              uuid.UUID
	DeveloperID     uuid.UUID
	IndustryID      uuid.UUID
	IndustryName    string
	YearsExperience int
}
