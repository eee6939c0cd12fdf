package usecase

import (
	"context"
	"errors"
	"fmt"

	"tunitech/internal/domain/experience"
	"tunitech/internal/domain/requirement"
	"tunitech/internal/repository"

	"github.com/google/uuid"
)

type CreateRequirementInput struct {
	CustomerID      uuid.UUID
	Title           string
	Description     string
	ExperienceLevel string
	TechnicalSkills string
	EmploymentType  string
}

type UpdateRequirementInput struct {
	Title           string
	Description     string
	ExperienceLevel string
	TechnicalSkills string
	EmploymentType  string
}

type AddSkillRequirementInput struct {
	SkillID      uuid.UUID
	Importance   int
	MinimumYears int
}

type AddIndustryRequirementInput struct {
	IndustryID uuid.UUID
	Required   bool
}

type RequirementUsecase interface {
	Create(ctx context.Context, in CreateRequirementInput) (requirement.ProjectRequirement, error)
	GetByID(ctx context.Context, id uuid.UUID) (requirement.ProjectRequirement, error)
	Update(ctx context.Context, actorUserID, requirementID uuid.UUID, in UpdateRequirementInput) (requirement.ProjectRequirement, error)
	Deactivate(ctx context.Context, actorUserID, requirementID uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]requirement.ProjectRequirement, error)
	ListActive(ctx context.Context) ([]requirement.ProjectRequirement, error)
	AddSkillRequirement(ctx context.Context, actorUserID, requirementID uuid.UUID, in AddSkillRequirementInput) error
	RemoveSkillRequirement(ctx context.Context, actorUserID, requirementID, skillID uuid.UUID) error
	ListSkillRequirements(ctx context.Context, requirementID uuid.UUID) ([]requirement.SkillRequirement, error)
	AddIndustryRequirement(ctx context.Context, actorUserID, requirementID uuid.UUID, in AddIndustryRequirementInput) error
	ListIndustryRequirements(ctx context.Context, requirementID uuid.UUID) ([]requirement.IndustryRequirement, error)
}

type RequirementService struct {
	requirements    repository.RequirementRepository
	requiredSkills  repository.RequirementSkillRepository
	industries      repository.RequirementIndustryRepository
	skillCatalog    repository.SkillRepository
	industryCatalog repository.IndustryRepository
}

func NewRequirementUsecase(
	requirements repository.RequirementRepository,
	requiredSkills repository.RequirementSkillRepository,
	industries repository.RequirementIndustryRepository,
	skillCatalog repository.SkillRepository,
	industryCatalog repository.IndustryRepository,
) *RequirementService {
	return &RequirementService{
		requirements:    requirements,
		requiredSkills:  requiredSkills,
		industries:      industries,
		skillCatalog:    skillCatalog,
		industryCatalog: industryCatalog,
	}
}

func (s *RequirementService) Create(ctx context.Context, in CreateRequirementInput) (requirement.ProjectRequirement, error) {
	level := experience.Normalize(in.ExperienceLevel)
	if in.CustomerID == uuid.Nil || in.Title == "" || !level.Valid() {
		return requirement.ProjectRequirement{}, ErrInvalidInput
	}

	pr := requirement.ProjectRequirement{
		ID:              uuid.New(),
		CustomerID:      in.CustomerID,
		Title:           in.Title,
		Description:     in.Description,
		ExperienceLevel: level,
		TechnicalSkills: in.TechnicalSkills,
		EmploymentType:  in.EmploymentType,
		IsActive:        true,
	}

	if err := s.requirements.Create(ctx, pr); err != nil {
		return requirement.ProjectRequirement{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return pr, nil
}

func (s *RequirementService) GetByID(ctx context.Context, id uuid.UUID) (requirement.ProjectRequirement, error) {
	pr, err := s.requirements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return requirement.ProjectRequirement{}, ErrNotFound
		}
		return requirement.ProjectRequirement{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return pr, nil
}

// Update mutates a requirement in place; only the owning customer may act.
func (s *RequirementService) Update(ctx context.Context, actorUserID, requirementID uuid.UUID, in UpdateRequirementInput) (requirement.ProjectRequirement, error) {
	pr, err := s.ownedRequirement(ctx, actorUserID, requirementID)
	if err != nil {
		return requirement.ProjectRequirement{}, err
	}

	level := experience.Normalize(in.ExperienceLevel)
	if in.Title == "" || !level.Valid() {
		return requirement.ProjectRequirement{}, ErrInvalidInput
	}

	pr.Title = in.Title
	pr.Description = in.Description
	pr.ExperienceLevel = level
	pr.TechnicalSkills = in.TechnicalSkills
	pr.EmploymentType = in.EmploymentType

	if err := s.requirements.Update(ctx, pr); err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return requirement.ProjectRequirement{}, ErrNotFound
		}
		return requirement.ProjectRequirement{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return pr, nil
}

// Deactivate soft-deletes; requirement rows are never removed.
func (s *RequirementService) Deactivate(ctx context.Context, actorUserID, requirementID uuid.UUID) error {
	if _, err := s.ownedRequirement(ctx, actorUserID, requirementID); err != nil {
		return err
	}
	if err := s.requirements.Deactivate(ctx, requirementID); err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (s *RequirementService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]requirement.ProjectRequirement, error) {
	out, err := s.requirements.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return out, nil
}

func (s *RequirementService) ListActive(ctx context.Context) ([]requirement.ProjectRequirement, error) {
	out, err := s.requirements.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return out, nil
}

func (s *RequirementService) AddSkillRequirement(ctx context.Context, actorUserID, requirementID uuid.UUID, in AddSkillRequirementInput) error {
	if _, err := s.ownedRequirement(ctx, actorUserID, requirementID); err != nil {
		return err
	}
	if in.Importance < 1 || in.Importance > 5 || in.MinimumYears < 0 {
		return ErrInvalidInput
	}

	exists, err := s.skillCatalog.SkillExistsByID(ctx, in.SkillID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !exists {
		return ErrNotFound
	}

	err = s.requiredSkills.Create(ctx, requirement.SkillRequirement{
		ID:                   uuid.New(),
		ProjectRequirementID: requirementID,
		SkillID:              in.SkillID,
		Importance:           in.Importance,
		MinimumYears:         in.MinimumYears,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillRequirementExists) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (s *RequirementService) RemoveSkillRequirement(ctx context.Context, actorUserID, requirementID, skillID uuid.UUID) error {
	if _, err := s.ownedRequirement(ctx, actorUserID, requirementID); err != nil {
		return err
	}
	if err := s.requiredSkills.Delete(ctx, requirementID, skillID); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (s *RequirementService) ListSkillRequirements(ctx context.Context, requirementID uuid.UUID) ([]requirement.SkillRequirement, error) {
	out, err := s.requiredSkills.FindByRequirementID(ctx, requirementID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return out, nil
}

func (s *RequirementService) AddIndustryRequirement(ctx context.Context, actorUserID, requirementID uuid.UUID, in AddIndustryRequirementInput) error {
	if _, err := s.ownedRequirement(ctx, actorUserID, requirementID); err != nil {
		return err
	}

	exists, err := s.industryCatalog.IndustryExistsByID(ctx, in.IndustryID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !exists {
		return ErrNotFound
	}

	err = s.industries.Create(ctx, requirement.IndustryRequirement{
		ID:                   uuid.New(),
		ProjectRequirementID: requirementID,
		IndustryID:           in.IndustryID,
		Required:             in.Required,
	})
	if err != nil {
		if errors.Is(err, repository.ErrIndustryRequirementExists) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (s *RequirementService) ListIndustryRequirements(ctx context.Context, requirementID uuid.UUID) ([]requirement.IndustryRequirement, error) {
	out, err := s.industries.FindByRequirementID(ctx, requirementID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return out, nil
}

func (s *RequirementService) ownedRequirement(ctx context.Context, actorUserID, requirementID uuid.UUID) (requirement.ProjectRequirement, error) {
	pr, err := s.requirements.GetByID(ctx, requirementID)
	if err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return requirement.ProjectRequirement{}, ErrNotFound
		}
		return requirement.ProjectRequirement{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if pr.CustomerID != actorUserID {
		return requirement.ProjectRequirement{}, ErrForbidden
	}
	return pr, nil
}
