package media

import "strings"

// RouteClass is the closed set of media route shapes the gateway serves.
type RouteClass int

const (
	// RouteOther is any path under the media namespace that is neither a
	// live nor an archive segment; it gets only the baseline headers.
	RouteOther RouteClass = iota
	// RouteLive is a segment of an ongoing feed (/cameras/{id}/stream/...).
	RouteLive
	// RouteArchive is a finalized segment (/cameras/{id}/archive/...).
	RouteArchive
)

func (c RouteClass) String() string {
	switch c {
	case RouteLive:
		return "live"
	case RouteArchive:
		return "archive"
	default:
		return "other"
	}
}

// DeliveryPolicy is the cache/CORS header pair applied before any media byte
// is streamed.
type DeliveryPolicy struct {
	CacheControl string
	AllowOrigin  string
}

var (
	// Live segments are ephemeral and must never be served stale; the open
	// CORS origin lets browser HLS players fetch cross-origin.
	livePolicy = DeliveryPolicy{
		CacheControl: "no-cache, no-store, must-revalidate",
		AllowOrigin:  "*",
	}

	// Archive segments are immutable once written, so a 24h public cache is
	// safe and spares repeated storage reads.
	archivePolicy = DeliveryPolicy{
		CacheControl: "public, max-age=86400",
		AllowOrigin:  "*",
	}
)

// Classify resolves the route class from the path shape alone. It never
// inspects request or body content, which keeps the caching decision
// independent of the stream transport.
func Classify(path string) RouteClass {
	rest, ok := strings.CutPrefix(path, "/cameras/")
	if !ok {
		return RouteOther
	}

	// rest is "{id}/stream/..." or "{id}/archive/..."
	id, rest, ok := strings.Cut(rest, "/")
	if !ok || id == "" {
		return RouteOther
	}

	kind, name, ok := strings.Cut(rest, "/")
	if !ok || name == "" {
		return RouteOther
	}

	switch kind {
	case "stream":
		return RouteLive
	case "archive":
		return RouteArchive
	default:
		return RouteOther
	}
}

// Policy returns the delivery policy for the class, or nil for RouteOther
// (baseline security headers only).
func (c RouteClass) Policy() *DeliveryPolicy {
	switch c {
	case RouteLive:
		return &livePolicy
	case RouteArchive:
		return &archivePolicy
	default:
		return nil
	}
}
