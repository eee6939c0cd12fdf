package match

import (
	"testing"
	"time"
)

func TestIsMutualMatch(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		name       string
		interested *time.Time
		approved   *time.Time
		status     Status
		want       bool
	}{
		{"neither", nil, nil, StatusPending, false},
		{"only_customer", &now, nil, StatusCustomerInterested, false},
		{"only_developer", nil, &now, StatusPending, false},
		{"both", &now, &now, StatusCustomerInterested, true},
		{"both_but_rejected", &now, &now, StatusRejected, false},
		{"both_hired", &now, &now, StatusHired, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := ProjectMatch{
				Status:               tc.status,
				CustomerInterestedAt: tc.interested,
				DeveloperApprovedAt:  tc.approved,
			}
			if got := IsMutualMatch(m); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusCustomerInterested.Terminal() {
		t.Fatalf("open statuses reported terminal")
	}
	if !StatusRejected.Terminal() || !StatusHired.Terminal() {
		t.Fatalf("closed statuses not reported terminal")
	}
}
