package match

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending            Status = "pending"
	StatusCustomerInterested Status = "customer_interested"
	StatusHired              Status = "hired"
	StatusRejected           Status = "rejected"
)

// Terminal reports whether no further lifecycle mutation may touch the match.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusHired
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCustomerInterested, StatusHired, StatusRejected:
		return true
	}
	return false
}

// ProjectMatch pairs one project requirement with one developer and tracks
// the bilateral interest state between them. At most one row exists per
// (requirement, developer) pair.
type ProjectMatch struct {
	ID                   uuid.UUID
	ProjectRequirementID uuid.UUID
	DeveloperID          uuid.UUID
	MatchScore           int
	Status               Status
	CustomerInterestedAt *time.Time
	DeveloperApprovedAt  *time.Time
	MeetingScheduledAt   *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsMutualMatch reports whether both sides have signaled interest and the
// match has not been rejected. Both timestamps are append-only, so this
// predicate is stable once true unless the match is later rejected.
func IsMutualMatch(m ProjectMatch) bool {
	return m.CustomerInterestedAt != nil &&
		m.DeveloperApprovedAt != nil &&
		m.Status != StatusRejected
}
