package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"tunitech/internal/domain/developer"
	"tunitech/internal/domain/experience"
	"tunitech/internal/domain/match"
	"tunitech/internal/domain/requirement"
	"tunitech/internal/notification"
	"tunitech/internal/repository"

	"github.com/google/uuid"
)

// fakeMatchRepo mimics the store's conditional-update semantics in memory:
// guarded updates against a closed match affect zero rows.
type fakeMatchRepo struct {
	byID map[uuid.UUID]*match.ProjectMatch
	err  error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{byID: make(map[uuid.UUID]*match.ProjectMatch)}
}

func (f *fakeMatchRepo) Insert(_ context.Context, m match.ProjectMatch) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.ProjectRequirementID == m.ProjectRequirementID && existing.DeveloperID == m.DeveloperID {
			return repository.ErrMatchExists
		}
	}
	cp := m
	f.byID[m.ID] = &cp
	return nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id uuid.UUID) (match.ProjectMatch, error) {
	if f.err != nil {
		return match.ProjectMatch{}, f.err
	}
	m, ok := f.byID[id]
	if !ok {
		return match.ProjectMatch{}, repository.ErrMatchNotFound
	}
	return *m, nil
}

func (f *fakeMatchRepo) GetByPair(_ context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error) {
	for _, m := range f.byID {
		if m.ProjectRequirementID == requirementID && m.DeveloperID == developerID {
			return *m, nil
		}
	}
	return match.ProjectMatch{}, repository.ErrMatchNotFound
}

func (f *fakeMatchRepo) SetCustomerInterested(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	m, ok := f.byID[id]
	if !ok || m.Status.Terminal() {
		return false, nil
	}
	if m.CustomerInterestedAt == nil {
		t := at
		m.CustomerInterestedAt = &t
	}
	if m.Status == match.StatusPending {
		m.Status = match.StatusCustomerInterested
	}
	m.UpdatedAt = at
	return true, nil
}

func (f *fakeMatchRepo) SetDeveloperApproved(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	m, ok := f.byID[id]
	if !ok || m.Status.Terminal() {
		return false, nil
	}
	if m.DeveloperApprovedAt == nil {
		t := at
		m.DeveloperApprovedAt = &t
	}
	m.UpdatedAt = at
	return true, nil
}

func (f *fakeMatchRepo) SetRejected(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	m, ok := f.byID[id]
	if !ok || m.Status.Terminal() {
		return false, nil
	}
	m.Status = match.StatusRejected
	m.UpdatedAt = at
	return true, nil
}

func (f *fakeMatchRepo) SetHired(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	m, ok := f.byID[id]
	if !ok || m.Status.Terminal() || m.CustomerInterestedAt == nil || m.DeveloperApprovedAt == nil {
		return false, nil
	}
	m.Status = match.StatusHired
	m.UpdatedAt = at
	return true, nil
}

func (f *fakeMatchRepo) ListByRequirement(_ context.Context, requirementID uuid.UUID) ([]match.ProjectMatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []match.ProjectMatch
	for _, m := range f.byID {
		if m.ProjectRequirementID == requirementID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	return out, nil
}

func (f *fakeMatchRepo) ListByDeveloper(_ context.Context, developerID uuid.UUID) ([]match.ProjectMatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []match.ProjectMatch
	for _, m := range f.byID {
		if m.DeveloperID == developerID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeRequirementRepo struct {
	byID map[uuid.UUID]requirement.ProjectRequirement
}

func (f fakeRequirementRepo) Create(context.Context, requirement.ProjectRequirement) error { return nil }
func (f fakeRequirementRepo) GetByID(_ context.Context, id uuid.UUID) (requirement.ProjectRequirement, error) {
	r, ok := f.byID[id]
	if !ok {
		return requirement.ProjectRequirement{}, repository.ErrRequirementNotFound
	}
	return r, nil
}
func (f fakeRequirementRepo) Update(context.Context, requirement.ProjectRequirement) error {
	return nil
}

func (f fakeRequirementRepo) Deactivate(context.Context, uuid.UUID) error { return nil }
func (f fakeRequirementRepo) ListByCustomer(context.Context, uuid.UUID) ([]requirement.ProjectRequirement, error) {
	return nil, nil
}
func (f fakeRequirementRepo) ListActive(context.Context) ([]requirement.ProjectRequirement, error) {
	return nil, nil
}
func (f fakeRequirementRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

type fakeDeveloperRepo struct {
	byID map[uuid.UUID]developer.Developer
}

func (f fakeDeveloperRepo) Create(context.Context, developer.Developer) error { return nil }
func (f fakeDeveloperRepo) GetByID(_ context.Context, id uuid.UUID) (developer.Developer, error) {
	d, ok := f.byID[id]
	if !ok {
		return developer.Developer{}, repository.ErrDeveloperNotFound
	}
	return d, nil
}
func (f fakeDeveloperRepo) GetByUserID(context.Context, uuid.UUID) (developer.Developer, error) {
	return developer.Developer{}, repository.ErrDeveloperNotFound
}
func (f fakeDeveloperRepo) Update(context.Context, developer.Developer) error { return nil }

func (f fakeDeveloperRepo) ListAvailable(context.Context) ([]developer.Developer, error) {
	var out []developer.Developer
	for _, d := range f.byID {
		if d.IsApproved && d.AvailableForWork {
			out = append(out, d)
		}
	}
	return out, nil
}
func (f fakeDeveloperRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

type recordingNotifier struct {
	events []notification.Event
}

func (r *recordingNotifier) Notify(_ context.Context, ev notification.Event) {
	r.events = append(r.events, ev)
}

type lifecycleFixture struct {
	uc            *MatchLifecycle
	matches       *fakeMatchRepo
	notifier      *recordingNotifier
	requirementID uuid.UUID
	developerID   uuid.UUID
	customerID    uuid.UUID
	devUserID     uuid.UUID
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()

	requirementID := uuid.New()
	developerID := uuid.New()
	customerID := uuid.New()
	devUserID := uuid.New()

	matches := newFakeMatchRepo()
	notifier := &recordingNotifier{}

	uc := NewMatchLifecycleUsecase(
		matches,
		fakeRequirementRepo{byID: map[uuid.UUID]requirement.ProjectRequirement{
			requirementID: {
				ID:              requirementID,
				CustomerID:      customerID,
				ExperienceLevel: experience.Senior,
				TechnicalSkills: "React, Node.js, AWS",
				IsActive:        true,
			},
		}},
		fakeDeveloperRepo{byID: map[uuid.UUID]developer.Developer{
			developerID: {
				ID:              developerID,
				UserID:          devUserID,
				ExperienceLevel: experience.Senior,
				TechnicalSkills: []string{"React", "Node.js", "AWS", "TypeScript"},
			},
		}},
		notifier,
	)

	return &lifecycleFixture{
		uc:            uc,
		matches:       matches,
		notifier:      notifier,
		requirementID: requirementID,
		developerID:   developerID,
		customerID:    customerID,
		devUserID:     devUserID,
	}
}

func TestCreateSystemMatch(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, err := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.Status != match.StatusPending {
		t.Fatalf("expected pending, got %s", m.Status)
	}
	if m.MatchScore != 100 {
		t.Fatalf("expected score 100, got %d", m.MatchScore)
	}
	if m.CustomerInterestedAt != nil || m.DeveloperApprovedAt != nil {
		t.Fatalf("expected both timestamps nil")
	}
	if len(fx.notifier.events) != 1 || fx.notifier.events[0].Kind != notification.KindMatchCreated {
		t.Fatalf("expected one match_created notification, got %v", fx.notifier.events)
	}
	if fx.notifier.events[0].RecipientUserID != fx.devUserID {
		t.Fatalf("notification sent to wrong recipient")
	}
}

func TestCreateSystemMatch_DuplicatePair(t *testing.T) {
	fx := newLifecycleFixture(t)

	if _, err := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)
	if !errors.Is(err, ErrDuplicateMatch) {
		t.Fatalf("expected ErrDuplicateMatch, got %v", err)
	}
	if len(fx.matches.byID) != 1 {
		t.Fatalf("expected exactly one match row, got %d", len(fx.matches.byID))
	}
}

func TestCreateSystemMatch_UnknownRequirement(t *testing.T) {
	fx := newLifecycleFixture(t)

	_, err := fx.uc.CreateSystemMatch(context.Background(), uuid.New(), fx.developerID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateDeveloperInitiatedMatch(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, err := fx.uc.CreateDeveloperInitiatedMatch(context.Background(), fx.requirementID, fx.developerID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if m.MatchScore != 0 {
		t.Fatalf("expected score 0, got %d", m.MatchScore)
	}
	if m.DeveloperApprovedAt == nil {
		t.Fatalf("expected developer_approved_at to be stamped on creation")
	}
	if m.CustomerInterestedAt != nil {
		t.Fatalf("expected customer_interested_at nil")
	}

	_, err = fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)
	if !errors.Is(err, ErrDuplicateMatch) {
		t.Fatalf("expected ErrDuplicateMatch for same pair, got %v", err)
	}
}

func TestCustomerExpressInterest_Idempotent(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, _ := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)

	first, err := fx.uc.CustomerExpressInterest(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.Status != match.StatusCustomerInterested {
		t.Fatalf("expected customer_interested, got %s", first.Status)
	}
	if first.CustomerInterestedAt == nil {
		t.Fatalf("expected timestamp set")
	}

	second, err := fx.uc.CustomerExpressInterest(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("second call must be a no-op, got %v", err)
	}
	if !second.CustomerInterestedAt.Equal(*first.CustomerInterestedAt) {
		t.Fatalf("timestamp changed on re-application")
	}
}

func TestCustomerExpressInterest_NotifiesDeveloper(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, _ := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)
	fx.notifier.events = nil

	if _, err := fx.uc.CustomerExpressInterest(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fx.notifier.events) != 1 {
		t.Fatalf("expected one notification, got %d", len(fx.notifier.events))
	}
	ev := fx.notifier.events[0]
	if ev.Kind != notification.KindCustomerInterested || ev.RecipientUserID != fx.devUserID || ev.MatchID != m.ID {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestDeveloperApprove_MutualMatchNotifiesCustomer(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, _ := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)
	if _, err := fx.uc.CustomerExpressInterest(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	fx.notifier.events = nil

	updated, err := fx.uc.DeveloperApprove(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !fx.uc.IsMutualMatch(updated) {
		t.Fatalf("expected mutual match")
	}
	// status stays customer_interested until the external hire step
	if updated.Status != match.StatusCustomerInterested {
		t.Fatalf("expected status customer_interested, got %s", updated.Status)
	}

	if len(fx.notifier.events) != 1 {
		t.Fatalf("expected one notification, got %d", len(fx.notifier.events))
	}
	ev := fx.notifier.events[0]
	if ev.Kind != notification.KindMutualMatch || ev.RecipientUserID != fx.customerID {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestDeveloperApprove_NoMutualNotificationWithoutInterest(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, _ := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)
	fx.notifier.events = nil

	updated, err := fx.uc.DeveloperApprove(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fx.uc.IsMutualMatch(updated) {
		t.Fatalf("match must not be mutual without customer interest")
	}
	if len(fx.notifier.events) != 0 {
		t.Fatalf("expected no notification, got %v", fx.notifier.events)
	}
}

func TestDeveloperReject_Terminal(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, _ := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)

	rejected, err := fx.uc.DeveloperReject(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rejected.Status != match.StatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}

	if _, err := fx.uc.CustomerExpressInterest(context.Background(), m.ID); !errors.Is(err, ErrMatchClosed) {
		t.Fatalf("expected ErrMatchClosed, got %v", err)
	}
	if _, err := fx.uc.DeveloperApprove(context.Background(), m.ID); !errors.Is(err, ErrMatchClosed) {
		t.Fatalf("expected ErrMatchClosed, got %v", err)
	}
	if _, err := fx.uc.DeveloperReject(context.Background(), m.ID); !errors.Is(err, ErrMatchClosed) {
		t.Fatalf("second reject must error, got %v", err)
	}

	current, err := fx.matches.GetByID(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if current.Status != match.StatusRejected {
		t.Fatalf("status drifted from rejected: %s", current.Status)
	}
}

func TestMarkHired(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, _ := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)

	if _, err := fx.uc.MarkHired(context.Background(), m.ID); !errors.Is(err, ErrNotMutual) {
		t.Fatalf("expected ErrNotMutual, got %v", err)
	}

	if _, err := fx.uc.CustomerExpressInterest(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := fx.uc.DeveloperApprove(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	hired, err := fx.uc.MarkHired(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hired.Status != match.StatusHired {
		t.Fatalf("expected hired, got %s", hired.Status)
	}

	if _, err := fx.uc.MarkHired(context.Background(), m.ID); !errors.Is(err, ErrMatchClosed) {
		t.Fatalf("expected ErrMatchClosed on re-hire, got %v", err)
	}
	if _, err := fx.uc.DeveloperReject(context.Background(), m.ID); !errors.Is(err, ErrMatchClosed) {
		t.Fatalf("expected ErrMatchClosed rejecting a hired match, got %v", err)
	}
}

func TestLifecycle_UnknownMatch(t *testing.T) {
	fx := newLifecycleFixture(t)

	if _, err := fx.uc.CustomerExpressInterest(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := fx.uc.DeveloperReject(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLifecycle_StoreErrorSurfaces(t *testing.T) {
	fx := newLifecycleFixture(t)

	m, _ := fx.uc.CreateSystemMatch(context.Background(), fx.requirementID, fx.developerID)
	fx.matches.err = errors.New("connection refused")

	if _, err := fx.uc.CustomerExpressInterest(context.Background(), m.ID); !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}
