package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"tunitech/internal/domain/match"
	"tunitech/internal/domain/matchscore"
	"tunitech/internal/repository"

	"github.com/google/uuid"
)

type ScoredDeveloper struct {
	DeveloperID     uuid.UUID
	FullName        string
	ExperienceLevel string
	YearsExperience int
	TechnicalSkills []string
	MatchScore      int
}

type MatchQueryUsecase interface {
	ListForRequirement(ctx context.Context, requirementID uuid.UUID) ([]match.ProjectMatch, error)
	ListForDeveloper(ctx context.Context, developerID uuid.UUID) ([]match.ProjectMatch, error)
	GetForPair(ctx context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error)
	BrowseDevelopers(ctx context.Context, requirementID uuid.UUID) ([]ScoredDeveloper, error)
}

type MatchQuery struct {
	matches      repository.MatchRepository
	requirements repository.RequirementRepository
	developers   repository.DeveloperRepository
}

func NewMatchQueryUsecase(
	matches repository.MatchRepository,
	requirements repository.RequirementRepository,
	developers repository.DeveloperRepository,
) *MatchQuery {
	return &MatchQuery{matches: matches, requirements: requirements, developers: developers}
}

func (u *MatchQuery) ListForRequirement(ctx context.Context, requirementID uuid.UUID) ([]match.ProjectMatch, error) {
	exists, err := u.requirements.ExistsByID(ctx, requirementID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	out, err := u.matches.ListByRequirement(ctx, requirementID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return out, nil
}

func (u *MatchQuery) ListForDeveloper(ctx context.Context, developerID uuid.UUID) ([]match.ProjectMatch, error) {
	exists, err := u.developers.ExistsByID(ctx, developerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	out, err := u.matches.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return out, nil
}

// GetForPair looks up the match record for one requirement and developer,
// regardless of who initiated it.
func (u *MatchQuery) GetForPair(ctx context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error) {
	m, err := u.matches.GetByPair(ctx, requirementID, developerID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.ProjectMatch{}, ErrNotFound
		}
		return match.ProjectMatch{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return m, nil
}

// BrowseDevelopers scores every approved, available developer against the
// requirement for the customer's discovery page. Scores are computed on the
// fly and advisory only; no match records are created here.
func (u *MatchQuery) BrowseDevelopers(ctx context.Context, requirementID uuid.UUID) ([]ScoredDeveloper, error) {
	req, err := u.requirements.GetByID(ctx, requirementID)
	if err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	devs, err := u.developers.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	out := make([]ScoredDeveloper, 0, len(devs))
	for _, d := range devs {
		score := matchscore.Calculate(
			matchscore.Requirement{ExperienceLevel: req.ExperienceLevel, TechnicalSkills: req.TechnicalSkills},
			matchscore.Developer{ExperienceLevel: d.ExperienceLevel, TechnicalSkills: d.TechnicalSkills},
		)
		out = append(out, ScoredDeveloper{
			DeveloperID:     d.ID,
			FullName:        d.FullName,
			ExperienceLevel: string(d.ExperienceLevel),
			YearsExperience: d.YearsExperience,
			TechnicalSkills: d.TechnicalSkills,
			MatchScore:      score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	return out, nil
}
