package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/jet-merchant/internal/jet"
)

// QuotaHandler provides the merchant API quota status endpoint.
type QuotaHandler struct {
	throttle *jet.Throttle
}

// NewQuotaHandler creates a new QuotaHandler.
func NewQuotaHandler(t *jet.Throttle) *QuotaHandler {
	return &QuotaHandler{throttle: t}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		DailyLimit int64      `json:"daily_limit"        example:"5000"                 doc:"Configured daily API call limit (0 means uncapped)"`
		DailyUsed  int64      `json:"daily_used"         example:"142"                  doc:"API calls used in the current 24-hour window"`
		Remaining  int64      `json:"remaining"          example:"4858"                 doc:"API calls remaining in the current window (-1 when uncapped)"`
		ResetAt    *time.Time `json:"reset_at,omitempty" example:"2025-06-16T14:30:00Z" doc:"When the current 24-hour window expires"`
	}
}

// GetQuota returns the current merchant API quota status.
func (h *QuotaHandler) GetQuota(_ context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	if h.throttle == nil {
		resp.Body.Remaining = -1
		return resp, nil
	}

	resp.Body.DailyLimit = h.throttle.MaxDaily()
	resp.Body.DailyUsed = h.throttle.Used()
	resp.Body.Remaining = h.throttle.Remaining()
	if reset := h.throttle.ResetAt(); !reset.IsZero() {
		resp.Body.ResetAt = &reset
	}

	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/api/v1/quota",
		Summary:     "Get merchant API quota status",
		Description: "Returns the current daily API call usage, remaining quota, and window reset time.",
		Tags:        []string{"jet"},
	}, h.GetQuota)
}
