package usecase

import (
	"context"
	"errors"
	"fmt"

	"tunitech/internal/domain/developer"
	"tunitech/internal/domain/experience"
	"tunitech/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrForbidden      = errors.New("forbidden")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

type OnboardDeveloperInput struct {
	UserID          uuid.UUID
	FullName        string
	ExperienceLevel string
	YearsExperience int
	TechnicalSkills []string
	HourlyRate      *int
}

type UpdateDeveloperInput struct {
	FullName         string
	ExperienceLevel  string
	YearsExperience  int
	TechnicalSkills  []string
	HourlyRate       *int
	AvailableForWork bool
}

type AddDeveloperSkillInput struct {
	SkillID         uuid.UUID
	Proficiency     int
	YearsExperience int
}

type AddDeveloperIndustryInput struct {
	IndustryID      uuid.UUID
	YearsExperience int
}

type DeveloperUsecase interface {
	Onboard(ctx context.Context, in OnboardDeveloperInput) (developer.Developer, error)
	GetByID(ctx context.Context, id uuid.UUID) (developer.Developer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (developer.Developer, error)
	UpdateProfile(ctx context.Context, actorUserID, developerID uuid.UUID, in UpdateDeveloperInput) (developer.Developer, error)
	AddSkill(ctx context.Context, actorUserID, developerID uuid.UUID, in AddDeveloperSkillInput) error
	RemoveSkill(ctx context.Context, actorUserID, developerID, skillID uuid.UUID) error
	ListSkills(ctx context.Context, developerID uuid.UUID) ([]developer.DeveloperSkill, error)
	AddIndustry(ctx context.Context, actorUserID, developerID uuid.UUID, in AddDeveloperIndustryInput) error
	ListIndustries(ctx context.Context, developerID uuid.UUID) ([]developer.DeveloperIndustry, error)
}

type DeveloperService struct {
	developers      repository.DeveloperRepository
	skills          repository.DeveloperSkillRepository
	industries      repository.DeveloperIndustryRepository
	catalog         repository.SkillRepository
	industryCatalog repository.IndustryRepository
}

func NewDeveloperUsecase(
	developers repository.DeveloperRepository,
	skills repository.DeveloperSkillRepository,
	industries repository.DeveloperIndustryRepository,
	catalog repository.SkillRepository,
	industryCatalog repository.IndustryRepository,
) *DeveloperService {
	return &DeveloperService{
		developers:      developers,
		skills:          skills,
		industries:      industries,
		catalog:         catalog,
		industryCatalog: industryCatalog,
	}
}

// Onboard creates an unapproved profile; approval is toggled by an external
// moderation step, never here.
func (s *DeveloperService) Onboard(ctx context.Context, in OnboardDeveloperInput) (developer.Developer, error) {
	level := experience.Normalize(in.ExperienceLevel)
	if in.UserID == uuid.Nil || in.FullName == "" || !level.Valid() || in.YearsExperience < 0 {
		return developer.Developer{}, ErrInvalidInput
	}

	d := developer.Developer{
		ID:               uuid.New(),
		UserID:           in.UserID,
		FullName:         in.FullName,
		ExperienceLevel:  level,
		YearsExperience:  in.YearsExperience,
		TechnicalSkills:  in.TechnicalSkills,
		HourlyRate:       in.HourlyRate,
		IsApproved:       false,
		AvailableForWork: true,
	}

	if err := s.developers.Create(ctx, d); err != nil {
		return developer.Developer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return d, nil
}

func (s *DeveloperService) GetByID(ctx context.Context, id uuid.UUID) (developer.Developer, error) {
	d, err := s.developers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeveloperNotFound) {
			return developer.Developer{}, ErrNotFound
		}
		return developer.Developer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return d, nil
}

func (s *DeveloperService) GetByUserID(ctx context.Context, userID uuid.UUID) (developer.Developer, error) {
	d, err := s.developers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDeveloperNotFound) {
			return developer.Developer{}, ErrNotFound
		}
		return developer.Developer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return d, nil
}

func (s *DeveloperService) UpdateProfile(ctx context.Context, actorUserID, developerID uuid.UUID, in UpdateDeveloperInput) (developer.Developer, error) {
	d, err := s.ownedDeveloper(ctx, actorUserID, developerID)
	if err != nil {
		return developer.Developer{}, err
	}

	level := experience.Normalize(in.ExperienceLevel)
	if in.FullName == "" || !level.Valid() || in.YearsExperience < 0 {
		return developer.Developer{}, ErrInvalidInput
	}

	d.FullName = in.FullName
	d.ExperienceLevel = level
	d.YearsExperience = in.YearsExperience
	d.TechnicalSkills = in.TechnicalSkills
	d.HourlyRate = in.HourlyRate
	d.AvailableForWork = in.AvailableForWork

	if err := s.developers.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDeveloperNotFound) {
			return developer.Developer{}, ErrNotFound
		}
		return developer.Developer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return d, nil
}

func (s *DeveloperService) AddSkill(ctx context.Context, actorUserID, developerID uuid.UUID, in AddDeveloperSkillInput) error {
	if _, err := s.ownedDeveloper(ctx, actorUserID, developerID); err != nil {
		return err
	}
	if in.Proficiency < 1 || in.Proficiency > 5 || in.YearsExperience < 0 {
		return ErrInvalidInput
	}

	exists, err := s.catalog.SkillExistsByID(ctx, in.SkillID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !exists {
		return ErrNotFound
	}

	err = s.skills.Create(ctx, developer.DeveloperSkill{
		ID:              uuid.New(),
		DeveloperID:     developerID,
		SkillID:         in.SkillID,
		Proficiency:     in.Proficiency,
		YearsExperience: in.YearsExperience,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDeveloperSkillExists) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (s *DeveloperService) RemoveSkill(ctx context.Context, actorUserID, developerID, skillID uuid.UUID) error {
	if _, err := s.ownedDeveloper(ctx, actorUserID, developerID); err != nil {
		return err
	}
	if err := s.skills.Delete(ctx, developerID, skillID); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (s *DeveloperService) ListSkills(ctx context.Context, developerID uuid.UUID) ([]developer.DeveloperSkill, error) {
	out, err := s.skills.FindByDeveloperID(ctx, developerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return out, nil
}

func (s *DeveloperService) AddIndustry(ctx context.Context, actorUserID, developerID uuid.UUID, in AddDeveloperIndustryInput) error {
	if _, err := s.ownedDeveloper(ctx, actorUserID, developerID); err != nil {
		return err
	}
	if in.YearsExperience < 0 {
		return ErrInvalidInput
	}

	exists, err := s.industryCatalog.IndustryExistsByID(ctx, in.IndustryID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !exists {
		return ErrNotFound
	}

	err = s.industries.Create(ctx, developer.DeveloperIndustry{
		ID:              uuid.New(),
		DeveloperID:     developerID,
		IndustryID:      in.IndustryID,
		YearsExperience: in.YearsExperience,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDeveloperIndustryExists) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (s *DeveloperService) ListIndustries(ctx context.Context, developerID uuid.UUID) ([]developer.DeveloperIndustry, error) {
	out, err := s.industries.FindByDeveloperID(ctx, developerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return out, nil
}

func (s *DeveloperService) ownedDeveloper(ctx context.Context, actorUserID, developerID uuid.UUID) (developer.Developer, error) {
	d, err := s.developers.GetByID(ctx, developerID)
	if err != nil {
		if errors.Is(err, repository.ErrDeveloperNotFound) {
			return developer.Developer{}, ErrNotFound
		}
		return developer.Developer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if d.UserID != actorUserID {
		return developer.Developer{}, ErrForbidden
	}
	return d, nil
}
