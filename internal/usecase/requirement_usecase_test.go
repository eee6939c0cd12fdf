package usecase

import (
	"context"
	"errors"
	"testing"

	"tunitech/internal/domain/experience"
	"tunitech/internal/domain/requirement"
	"tunitech/internal/repository"

	"github.com/google/uuid"
)

type fakeRequirementSkillRepo struct {
	bySkill map[uuid.UUID]requirement.SkillRequirement
}

func newFakeRequirementSkillRepo() *fakeRequirementSkillRepo {
	return &fakeRequirementSkillRepo{bySkill: make(map[uuid.UUID]requirement.SkillRequirement)}
}

func (f *fakeRequirementSkillRepo) FindByRequirementID(context.Context, uuid.UUID) ([]requirement.SkillRequirement, error) {
	out := make([]requirement.SkillRequirement, 0, len(f.bySkill))
	for _, sr := range f.bySkill {
		out = append(out, sr)
	}
	return out, nil
}

func (f *fakeRequirementSkillRepo) Create(_ context.Context, sr requirement.SkillRequirement) error {
	if _, ok := f.bySkill[sr.SkillID]; ok {
		return repository.ErrSkillRequirementExists
	}
	f.bySkill[sr.SkillID] = sr
	return nil
}

func (f *fakeRequirementSkillRepo) Delete(_ context.Context, _ uuid.UUID, skillID uuid.UUID) error {
	delete(f.bySkill, skillID)
	return nil
}

type stubRequirementIndustryRepo struct{}

func (stubRequirementIndustryRepo) FindByRequirementID(context.Context, uuid.UUID) ([]requirement.IndustryRequirement, error) {
	return nil, nil
}
func (stubRequirementIndustryRepo) Create(context.Context, requirement.IndustryRequirement) error {
	return nil
}
func (stubRequirementIndustryRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func newRequirementFixture() (*RequirementService, uuid.UUID, uuid.UUID, *fakeRequirementSkillRepo) {
	requirementID := uuid.New()
	customerID := uuid.New()

	skills := newFakeRequirementSkillRepo()
	svc := NewRequirementUsecase(
		fakeRequirementRepo{byID: map[uuid.UUID]requirement.ProjectRequirement{
			requirementID: {
				ID:              requirementID,
				CustomerID:      customerID,
				Title:           "Backend developer for fintech platform",
				ExperienceLevel: experience.Medior,
				IsActive:        true,
			},
		}},
		skills,
		stubRequirementIndustryRepo{},
		&countingSkillRepo{},
		stubIndustryRepo{},
	)
	return svc, requirementID, customerID, skills
}

func TestRequirement_Create_InvalidLevel(t *testing.T) {
	svc, _, customerID, _ := newRequirementFixture()

	_, err := svc.Create(context.Background(), CreateRequirementInput{
		CustomerID:      customerID,
		Title:           "Fullstack",
		ExperienceLevel: "rockstar",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRequirement_AddSkillRequirement_ImportanceBounds(t *testing.T) {
	svc, requirementID, customerID, _ := newRequirementFixture()

	for _, importance := range []int{0, 6, -1} {
		err := svc.AddSkillRequirement(context.Background(), customerID, requirementID, AddSkillRequirementInput{
			SkillID:    uuid.New(),
			Importance: importance,
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("importance=%d: expected ErrInvalidInput, got %v", importance, err)
		}
	}
}

func TestRequirement_AddSkillRequirement_Duplicate(t *testing.T) {
	svc, requirementID, customerID, _ := newRequirementFixture()
	skillID := uuid.New()

	in := AddSkillRequirementInput{SkillID: skillID, Importance: 4, MinimumYears: 2}
	if err := svc.AddSkillRequirement(context.Background(), customerID, requirementID, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := svc.AddSkillRequirement(context.Background(), customerID, requirementID, in); !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
}

func TestRequirement_MutationsRequireOwnership(t *testing.T) {
	svc, requirementID, _, _ := newRequirementFixture()
	stranger := uuid.New()

	if _, err := svc.Update(context.Background(), stranger, requirementID, UpdateRequirementInput{
		Title:           "Hijacked",
		ExperienceLevel: "senior",
	}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := svc.Deactivate(context.Background(), stranger, requirementID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequirement_AddSkillRequirement_UnknownRequirement(t *testing.T) {
	svc, _, customerID, _ := newRequirementFixture()

	err := svc.AddSkillRequirement(context.Background(), customerID, uuid.New(), AddSkillRequirementInput{
		SkillID:    uuid.New(),
		Importance: 3,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
