package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/camai-video/gateway/internal/domain"
)

func TestBuildEventQuery(t *testing.T) {
	principal := domain.Principal{
		UserID:         uuid.New(),
		OrganizationID: uuid.New(),
	}

	tests := []struct {
		name string
		raw  EventQueryParams
		want domain.EventQuery
	}{
		{
			name: "defaults when everything absent",
			raw:  EventQueryParams{},
			want: domain.EventQuery{OrganizationID: principal.OrganizationID, Page: 1, Limit: 20},
		},
		{
			name: "explicit paging",
			raw:  EventQueryParams{Page: "2", Limit: "50"},
			want: domain.EventQuery{OrganizationID: principal.OrganizationID, Page: 2, Limit: 50},
		},
		{
			name: "unparsable paging falls back to defaults",
			raw:  EventQueryParams{Page: "abc", Limit: "x0"},
			want: domain.EventQuery{OrganizationID: principal.OrganizationID, Page: 1, Limit: 20},
		},
		{
			name: "negative page clamped",
			raw:  EventQueryParams{Page: "-3", Limit: "20"},
			want: domain.EventQuery{OrganizationID: principal.OrganizationID, Page: 1, Limit: 20},
		},
		{
			name: "zero limit clamped to default",
			raw:  EventQueryParams{Page: "1", Limit: "0"},
			want: domain.EventQuery{OrganizationID: principal.OrganizationID, Page: 1, Limit: 20},
		},
		{
			name: "oversized limit capped",
			raw:  EventQueryParams{Limit: "5000"},
			want: domain.EventQuery{OrganizationID: principal.OrganizationID, Page: 1, Limit: 100},
		},
		{
			name: "filters kept when present",
			raw:  EventQueryParams{CameraID: "cam-1", Type: "plate", Severity: "high"},
			want: domain.EventQuery{
				OrganizationID: principal.OrganizationID,
				CameraID:       "cam-1",
				Type:           "plate",
				Severity:       "high",
				Page:           1,
				Limit:          20,
			},
		},
		{
			name: "whitespace-only filters dropped",
			raw:  EventQueryParams{CameraID: "  ", Type: "\t", Severity: " "},
			want: domain.EventQuery{OrganizationID: principal.OrganizationID, Page: 1, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildEventQuery(tt.raw, principal)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The organization scope comes only from the principal; there is no raw
// parameter that can influence it.
func TestBuildEventQuery_TenantScope(t *testing.T) {
	orgA := domain.Principal{UserID: uuid.New(), OrganizationID: uuid.New()}
	orgB := domain.Principal{UserID: uuid.New(), OrganizationID: uuid.New()}

	raw := EventQueryParams{Page: "1", Limit: "20", CameraID: "cam-1"}

	assert.Equal(t, orgA.OrganizationID, BuildEventQuery(raw, orgA).OrganizationID)
	assert.Equal(t, orgB.OrganizationID, BuildEventQuery(raw, orgB).OrganizationID)
}

// Planning the same raw input twice must yield identical queries, so the two
// repository legs of one request always see the same predicate.
func TestBuildEventQuery_Deterministic(t *testing.T) {
	principal := domain.Principal{UserID: uuid.New(), OrganizationID: uuid.New()}
	raw := EventQueryParams{Page: "3", Limit: "25", CameraID: "cam-7", Type: "motion"}

	assert.Equal(t, BuildEventQuery(raw, principal), BuildEventQuery(raw, principal))
}
