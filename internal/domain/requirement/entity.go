package requirement

import (
	"time"

	"tunitech/internal/domain/experience"

	"github.com/google/uuid"
)

// ProjectRequirement is a customer's posted need for a developer. Rows are
// never hard-deleted; IsActive=false soft-deactivates them.
type ProjectRequirement struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	Title           string
	Description     string
	ExperienceLevel experience.Level
	TechnicalSkills string
	EmploymentType  string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SkillRequirement struct {
	ID                   uuid.UUID
	ProjectRequirementID uuid.UUID
	SkillID              uuid.UUID
	SkillName            string
	Importance           int
	MinimumYears         int
}

type IndustryRequirement struct {
	ID                   uuid.UUID
	ProjectRequirementID uuid.UUID
	IndustryID           uuid.UUID
	IndustryName         string
	Required             bool
}
