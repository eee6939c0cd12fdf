package dto

import (
	"time"

	"tunitech/internal/domain/match"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID                   uuid.UUID  `json:"id"`
	ProjectRequirementID uuid.UUID  `json:"project_requirement_id"`
	DeveloperID          uuid.UUID  `json:"developer_id"`
	MatchScore           int        `json:"match_score"`
	Status               string     `json:"status"`
	CustomerInterestedAt *time.Time `json:"customer_interested_at,omitempty"`
	DeveloperApprovedAt  *time.Time `json:"developer_approved_at,omitempty"`
	MeetingScheduledAt   *time.Time `json:"meeting_scheduled_at,omitempty"`
	IsMutual             bool       `json:"is_mutual"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func FromMatch(m match.ProjectMatch) MatchResponse {
	return MatchResponse{
		ID:                   m.ID,
		ProjectRequirementID: m.ProjectRequirementID,
		DeveloperID:          m.DeveloperID,
		MatchScore:           m.MatchScore,
		Status:               string(m.Status),
		CustomerInterestedAt: m.CustomerInterestedAt,
		DeveloperApprovedAt:  m.DeveloperApprovedAt,
		MeetingScheduledAt:   m.MeetingScheduledAt,
		IsMutual:             match.IsMutualMatch(m),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func FromMatches(ms []match.ProjectMatch) []MatchResponse {
	out := make([]MatchResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMatch(m))
	}
	return out
}
