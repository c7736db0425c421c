package service

import (
	"strconv"
	"strings"

	"github.com/camai-video/gateway/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// EventQueryParams is the untrusted raw input of an event listing request.
// Everything arrives as strings straight off the query string.
type EventQueryParams struct {
	Page     string
	Limit    string
	CameraID string
	Type     string
	Severity string
}

// BuildEventQuery plans the repository query for one listing request.
//
// Malformed page/limit values fall back to defaults rather than rejecting the
// request. Both are clamped so a hostile page=-1 or limit=0 can never produce
// a negative offset or a zero divisor downstream. The organization scope is
// taken exclusively from the principal: there is no way for a caller-supplied
// parameter to widen the predicate to another tenant.
func BuildEventQuery(raw EventQueryParams, principal domain.Principal) domain.EventQuery {
	page := parsePositiveInt(raw.Page, defaultPage)
	limit := parsePositiveInt(raw.Limit, defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}

	return domain.EventQuery{
		OrganizationID: principal.OrganizationID,
		CameraID:       strings.TrimSpace(raw.CameraID),
		Type:           strings.TrimSpace(raw.Type),
		Severity:       strings.TrimSpace(raw.Severity),
		Page:           page,
		Limit:          limit,
	}
}

// parsePositiveInt parses s as a positive integer, falling back to def when
// the value is absent, unparsable, or below one.
func parsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
