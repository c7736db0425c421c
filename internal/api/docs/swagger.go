package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// EventResponse represents a single event in a dashboard listing
type EventResponse struct {
	ID        string         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CameraID  string         `json:"cameraId" example:"3f1c9a7e-0b2d-4e5f-8a6b-1c2d3e4f5a6b"`
	Type      string         `json:"type" example:"motion"`
	Severity  string         `json:"severity" example:"warning"`
	Payload   map[string]any `json:"payload"`
	CreatedAt string         `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Camera    CameraResponse `json:"camera"`
}

// CameraResponse is the camera summary embedded in events
type CameraResponse struct {
	Name     string `json:"name" example:"North entrance"`
	Location string `json:"location" example:"Building A"`
}

// EventPageResponse is the paginated event envelope
type EventPageResponse struct {
	Events     []EventResponse    `json:"events"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse carries page bookkeeping
type PaginationResponse struct {
	Page       int `json:"page" example:"2"`
	Limit      int `json:"limit" example:"20"`
	Total      int `json:"total" example:"25"`
	TotalPages int `json:"totalPages" example:"2"`
}

// PlateResponse is one entry of the plate watch list
type PlateResponse struct {
	Number string `json:"number" example:"ABC1234"`
	Type   string `json:"type" example:"whitelist"`
}

// IngestEventRequest is a detection pushed by an internal service
type IngestEventRequest struct {
	CameraID string         `json:"cameraId" example:"3f1c9a7e-0b2d-4e5f-8a6b-1c2d3e4f5a6b"`
	Type     string         `json:"type" example:"plate"`
	Severity string         `json:"severity" example:"warning"`
	Payload  map[string]any `json:"payload"`
}

// HealthResponse is the health probe body
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty" example:"0.1.0"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "CamAI Gateway API",
		Version:     "v1.0.0",
		Description: "Event and media access gateway for the CamAI surveillance dashboard with multi-organization isolation",
		Host:        "localhost:3000",
		Path:        "/",
	})

	endpoints := []*endpoint.EndPoint{
		// Events endpoints

		// GET /v1/events - List Events
		endpoint.New(
			endpoint.GET,
			"/v1/events",
			endpoint.WithTags("Events"),
			endpoint.WithSummary("List events for the caller's organization"),
			endpoint.WithDescription("Returns a page of events scoped to the session's organization, newest first, with matching total counts"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.IntParam("page", parameter.Query, parameter.WithDescription("Page number (default 1)")),
				parameter.IntParam("limit", parameter.Query, parameter.WithDescription("Page size (1-100, default 20)")),
				parameter.StrParam("cameraId", parameter.Query, parameter.WithDescription("Filter by camera")),
				parameter.StrParam("type", parameter.Query, parameter.WithDescription("Filter by event type")),
				parameter.StrParam("severity", parameter.Query, parameter.WithDescription("Filter by severity")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EventPageResponse{}, "200", "Events retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or expired session"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"SessionCookie": {}}}),
		),

		// GET /cameras/:id/stream/* - Live media
		endpoint.New(
			endpoint.GET,
			"/cameras/{id}/stream/{segment}",
			endpoint.WithTags("Media"),
			endpoint.WithSummary("Fetch a live stream segment"),
			endpoint.WithDescription("Serves live HLS playlists and segments with caching disabled"),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Camera identifier")),
				parameter.StrParam("segment", parameter.Path, parameter.WithDescription("Playlist or segment name")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(struct{}{}, "200", "Segment bytes"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "SEGMENT_NOT_FOUND", Message: "Segment not found"}, "404", "Not Found"),
			}),
		),

		// GET /cameras/:id/archive/* - Archive media
		endpoint.New(
			endpoint.GET,
			"/cameras/{id}/archive/{segment}",
			endpoint.WithTags("Media"),
			endpoint.WithSummary("Fetch an archived recording segment"),
			endpoint.WithDescription("Serves immutable archive segments with a 24 hour public cache window"),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Camera identifier")),
				parameter.StrParam("segment", parameter.Path, parameter.WithDescription("Recording segment name")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(struct{}{}, "200", "Segment bytes"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "SEGMENT_NOT_FOUND", Message: "Segment not found"}, "404", "Not Found"),
			}),
		),

		// Internal endpoints

		// GET /internal/plates-sync - Plate watch list
		endpoint.New(
			endpoint.GET,
			"/internal/plates-sync",
			endpoint.WithTags("Internal"),
			endpoint.WithSummary("Full license plate watch list"),
			endpoint.WithDescription("Returns every watched plate across all organizations for recognition services to sync against. Requires the X-Plate-Sync trust header."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New([]PlateResponse{}, "200", "Watch list retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid trust header"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"PlateSyncHeader": {}}}),
		),

		// POST /internal/events - Ingest detection
		endpoint.New(
			endpoint.POST,
			"/internal/events",
			endpoint.WithTags("Internal"),
			endpoint.WithSummary("Record a detection event"),
			endpoint.WithDescription("Accepts a detection result pushed by an internal recognition service and fans it out to connected dashboards. Requires the X-Plate-Sync trust header."),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EventResponse{}, "201", "Event recorded successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "BAD_REQUEST", Message: "Malformed request body"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Missing or invalid trust header"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "CAMERA_NOT_FOUND", Message: "Camera not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "cameraId must be a valid UUID"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"PlateSyncHeader": {}}}),
		),

		// Health endpoints

		// GET /health
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Liveness probe"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is up"),
			}),
		),

		// GET /ready
		endpoint.New(
			endpoint.GET,
			"/ready",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Readiness probe"),
			endpoint.WithDescription("Verifies database connectivity"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is ready"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(HealthResponse{Status: "degraded"}, "503", "Database unreachable"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
