package usecase

import (
	"context"
	"errors"
	"testing"

	"tunitech/internal/domain/developer"
	"tunitech/internal/domain/experience"
	"tunitech/internal/domain/match"
	"tunitech/internal/domain/requirement"

	"github.com/google/uuid"
)

func newQueryFixture(t *testing.T) (*MatchQuery, *fakeMatchRepo, uuid.UUID, []uuid.UUID) {
	t.Helper()

	requirementID := uuid.New()
	devA := uuid.New()
	devB := uuid.New()
	devC := uuid.New()

	matches := newFakeMatchRepo()

	requirements := fakeRequirementRepo{byID: map[uuid.UUID]requirement.ProjectRequirement{
		requirementID: {
			ID:              requirementID,
			CustomerID:      uuid.New(),
			ExperienceLevel: experience.Senior,
			TechnicalSkills: "Python, Django",
			IsActive:        true,
		},
	}}

	developers := fakeDeveloperRepo{byID: map[uuid.UUID]developer.Developer{
		devA: {
			ID: devA, UserID: uuid.New(),
			FullName:        "Full Overlap",
			ExperienceLevel: experience.Senior,
			TechnicalSkills: []string{"Python", "Django"},
			IsApproved:      true, AvailableForWork: true,
		},
		devB: {
			ID: devB, UserID: uuid.New(),
			FullName:        "Partial Overlap",
			ExperienceLevel: experience.Medior,
			TechnicalSkills: []string{"Python"},
			IsApproved:      true, AvailableForWork: true,
		},
		devC: {
			ID: devC, UserID: uuid.New(),
			FullName:        "Not Available",
			ExperienceLevel: experience.Senior,
			TechnicalSkills: []string{"Python", "Django"},
			IsApproved:      true, AvailableForWork: false,
		},
	}}

	uc := NewMatchQueryUsecase(matches, requirements, developers)
	return uc, matches, requirementID, []uuid.UUID{devA, devB, devC}
}

func TestListForRequirementOrdersByScore(t *testing.T) {
	uc, matches, requirementID, devs := newQueryFixture(t)
	ctx := context.Background()

	low := match.ProjectMatch{ID: uuid.New(), ProjectRequirementID: requirementID, DeveloperID: devs[1], MatchScore: 40, Status: match.StatusPending}
	high := match.ProjectMatch{ID: uuid.New(), ProjectRequirementID: requirementID, DeveloperID: devs[0], MatchScore: 95, Status: match.StatusPending}
	for _, m := range []match.ProjectMatch{low, high} {
		if err := matches.Insert(ctx, m); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	out, err := uc.ListForRequirement(ctx, requirementID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out))
	}
	if out[0].MatchScore < out[1].MatchScore {
		t.Errorf("matches not ordered by score desc: %d before %d", out[0].MatchScore, out[1].MatchScore)
	}
}

func TestListForRequirementUnknownRequirement(t *testing.T) {
	uc, _, _, _ := newQueryFixture(t)

	if _, err := uc.ListForRequirement(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetForPair(t *testing.T) {
	uc, matches, requirementID, devs := newQueryFixture(t)
	ctx := context.Background()

	m := match.ProjectMatch{ID: uuid.New(), ProjectRequirementID: requirementID, DeveloperID: devs[0], MatchScore: 80, Status: match.StatusPending}
	if err := matches.Insert(ctx, m); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := uc.GetForPair(ctx, requirementID, devs[0])
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != m.ID {
		t.Errorf("got match %s, want %s", got.ID, m.ID)
	}

	if _, err := uc.GetForPair(ctx, requirementID, devs[1]); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBrowseDevelopersScoresAndSorts(t *testing.T) {
	uc, _, requirementID, devs := newQueryFixture(t)

	out, err := uc.BrowseDevelopers(context.Background(), requirementID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// devC is unavailable and must not appear.
	if len(out) != 2 {
		t.Fatalf("expected 2 scored developers, got %d", len(out))
	}
	if out[0].DeveloperID != devs[0] {
		t.Errorf("expected full-overlap senior first, got %s", out[0].FullName)
	}
	if out[0].MatchScore != 100 {
		t.Errorf("full overlap score = %d, want 100", out[0].MatchScore)
	}
	// Medior offered a senior project with half the skills: 25 + 30.
	if out[1].MatchScore != 55 {
		t.Errorf("partial overlap score = %d, want 55", out[1].MatchScore)
	}
}

func TestBrowseDevelopersUnknownRequirement(t *testing.T) {
	uc, _, _, _ := newQueryFixture(t)

	if _, err := uc.BrowseDevelopers(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
