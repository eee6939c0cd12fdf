package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tunitech/internal/domain/developer"
	"tunitech/internal/domain/match"
	"tunitech/internal/domain/matchscore"
	"tunitech/internal/domain/requirement"
	"tunitech/internal/notification"
	"tunitech/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrDuplicateMatch = errors.New("match already exists for this requirement and developer")
	ErrMatchClosed    = errors.New("match is rejected or hired")
	ErrNotFound       = errors.New("not found")
	ErrNotMutual      = errors.New("match is not mutual")
	ErrStore          = errors.New("store error")
)

type MatchLifecycleUsecase interface {
	CreateSystemMatch(ctx context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error)
	CreateDeveloperInitiatedMatch(ctx context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error)
	CustomerExpressInterest(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error)
	DeveloperApprove(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error)
	DeveloperReject(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error)
	MarkHired(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error)
	IsMutualMatch(m match.ProjectMatch) bool
}

// MatchLifecycle owns every state transition of a ProjectMatch. Positive
// transitions (interest, approval) are idempotent; rejection of an already
// closed match is an error so callers can detect stale UI state.
type MatchLifecycle struct {
	matches      repository.MatchRepository
	requirements repository.RequirementRepository
	developers   repository.DeveloperRepository
	notifier     notification.Notifier
	now          func() time.Time
}

func NewMatchLifecycleUsecase(
	matches repository.MatchRepository,
	requirements repository.RequirementRepository,
	developers repository.DeveloperRepository,
	notifier notification.Notifier,
) *MatchLifecycle {
	if notifier == nil {
		notifier = notification.NopNotifier{}
	}
	return &MatchLifecycle{
		matches:      matches,
		requirements: requirements,
		developers:   developers,
		notifier:     notifier,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateSystemMatch pairs a requirement with a developer and stores the
// computed compatibility score. The pair is unique: a second create yields
// ErrDuplicateMatch, never a second row.
func (u *MatchLifecycle) CreateSystemMatch(ctx context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error) {
	req, dev, err := u.loadPair(ctx, requirementID, developerID)
	if err != nil {
		return match.ProjectMatch{}, err
	}

	score := matchscore.Calculate(
		matchscore.Requirement{ExperienceLevel: req.ExperienceLevel, TechnicalSkills: req.TechnicalSkills},
		matchscore.Developer{ExperienceLevel: dev.ExperienceLevel, TechnicalSkills: dev.TechnicalSkills},
	)

	now := u.now()
	m := match.ProjectMatch{
		ID:                   uuid.New(),
		ProjectRequirementID: requirementID,
		DeveloperID:          developerID,
		MatchScore:           score,
		Status:               match.StatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := u.insert(ctx, m); err != nil {
		return match.ProjectMatch{}, err
	}

	u.notifier.Notify(ctx, notification.Event{
		RecipientUserID: dev.UserID,
		MatchID:         m.ID,
		Kind:            notification.KindMatchCreated,
	})

	return m, nil
}

// CreateDeveloperInitiatedMatch records a developer proactively expressing
// interest in a requirement. Expressing interest is itself an approval, so
// developer_approved_at is stamped immediately; the score stays 0 because no
// system computation backed the pairing.
func (u *MatchLifecycle) CreateDeveloperInitiatedMatch(ctx context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error) {
	_, dev, err := u.loadPair(ctx, requirementID, developerID)
	if err != nil {
		return match.ProjectMatch{}, err
	}

	now := u.now()
	m := match.ProjectMatch{
		ID:                   uuid.New(),
		ProjectRequirementID: requirementID,
		DeveloperID:          developerID,
		MatchScore:           0,
		Status:               match.StatusPending,
		DeveloperApprovedAt:  &now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := u.insert(ctx, m); err != nil {
		return match.ProjectMatch{}, err
	}

	u.notifier.Notify(ctx, notification.Event{
		RecipientUserID: dev.UserID,
		MatchID:         m.ID,
		Kind:            notification.KindMatchCreated,
	})

	return m, nil
}

// CustomerExpressInterest stamps customer_interested_at (first call wins,
// re-application is a no-op) and moves a pending match to
// customer_interested. Closed matches yield ErrMatchClosed.
func (u *MatchLifecycle) CustomerExpressInterest(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error) {
	applied, err := u.matches.SetCustomerInterested(ctx, matchID, u.now())
	if err != nil {
		return match.ProjectMatch{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !applied {
		return match.ProjectMatch{}, u.explainRefusedUpdate(ctx, matchID)
	}

	m, err := u.getMatch(ctx, matchID)
	if err != nil {
		return match.ProjectMatch{}, err
	}

	if dev, err := u.developers.GetByID(ctx, m.DeveloperID); err == nil {
		u.notifier.Notify(ctx, notification.Event{
			RecipientUserID: dev.UserID,
			MatchID:         m.ID,
			Kind:            notification.KindCustomerInterested,
		})
	}

	return m, nil
}

// DeveloperApprove stamps developer_approved_at (idempotent). When the
// customer's interest is already on record the match has become mutual and
// the customer is notified.
func (u *MatchLifecycle) DeveloperApprove(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error) {
	applied, err := u.matches.SetDeveloperApproved(ctx, matchID, u.now())
	if err != nil {
		return match.ProjectMatch{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !applied {
		return match.ProjectMatch{}, u.explainRefusedUpdate(ctx, matchID)
	}

	m, err := u.getMatch(ctx, matchID)
	if err != nil {
		return match.ProjectMatch{}, err
	}

	if match.IsMutualMatch(m) {
		if req, err := u.requirements.GetByID(ctx, m.ProjectRequirementID); err == nil {
			u.notifier.Notify(ctx, notification.Event{
				RecipientUserID: req.CustomerID,
				MatchID:         m.ID,
				Kind:            notification.KindMutualMatch,
			})
		}
	}

	return m, nil
}

// DeveloperReject closes the match permanently. Rejecting an already closed
// match is reported as ErrMatchClosed rather than ignored.
func (u *MatchLifecycle) DeveloperReject(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error) {
	applied, err := u.matches.SetRejected(ctx, matchID, u.now())
	if err != nil {
		return match.ProjectMatch{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !applied {
		return match.ProjectMatch{}, u.explainRefusedUpdate(ctx, matchID)
	}
	return u.getMatch(ctx, matchID)
}

// MarkHired is the external hiring step made explicit: it promotes a mutual
// match to hired. A non-mutual match yields ErrNotMutual, a closed one
// ErrMatchClosed.
func (u *MatchLifecycle) MarkHired(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error) {
	applied, err := u.matches.SetHired(ctx, matchID, u.now())
	if err != nil {
		return match.ProjectMatch{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if !applied {
		m, err := u.getMatch(ctx, matchID)
		if err != nil {
			return match.ProjectMatch{}, err
		}
		if m.Status.Terminal() {
			return match.ProjectMatch{}, ErrMatchClosed
		}
		return match.ProjectMatch{}, ErrNotMutual
	}
	return u.getMatch(ctx, matchID)
}

func (u *MatchLifecycle) IsMutualMatch(m match.ProjectMatch) bool {
	return match.IsMutualMatch(m)
}

func (u *MatchLifecycle) loadPair(ctx context.Context, requirementID, developerID uuid.UUID) (requirement.ProjectRequirement, developer.Developer, error) {
	r, err := u.requirements.GetByID(ctx, requirementID)
	if err != nil {
		if errors.Is(err, repository.ErrRequirementNotFound) {
			return requirement.ProjectRequirement{}, developer.Developer{}, ErrNotFound
		}
		return requirement.ProjectRequirement{}, developer.Developer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	d, err := u.developers.GetByID(ctx, developerID)
	if err != nil {
		if errors.Is(err, repository.ErrDeveloperNotFound) {
			return requirement.ProjectRequirement{}, developer.Developer{}, ErrNotFound
		}
		return requirement.ProjectRequirement{}, developer.Developer{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return r, d, nil
}

func (u *MatchLifecycle) insert(ctx context.Context, m match.ProjectMatch) error {
	if err := u.matches.Insert(ctx, m); err != nil {
		if errors.Is(err, repository.ErrMatchExists) {
			return ErrDuplicateMatch
		}
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

func (u *MatchLifecycle) getMatch(ctx context.Context, matchID uuid.UUID) (match.ProjectMatch, error) {
	m, err := u.matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.ProjectMatch{}, ErrNotFound
		}
		return match.ProjectMatch{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return m, nil
}

// explainRefusedUpdate turns a zero-row conditional update into a typed
// error by reading the current state: the row is either gone or closed.
func (u *MatchLifecycle) explainRefusedUpdate(ctx context.Context, matchID uuid.UUID) error {
	m, err := u.getMatch(ctx, matchID)
	if err != nil {
		return err
	}
	if m.Status.Terminal() {
		return ErrMatchClosed
	}
	return fmt.Errorf("%w: conditional update did not apply", ErrStore)
}
