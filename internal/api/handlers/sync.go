package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/store"
	"github.com/donaldgifford/jet-merchant/internal/syncer"
)

// SyncHandler handles manual sync triggers and sync history.
type SyncHandler struct {
	runner syncer.Runner
	store  store.Store
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(r syncer.Runner, s store.Store) *SyncHandler {
	return &SyncHandler{runner: r, store: s}
}

// SyncOutput is the response body for the sync trigger endpoint.
type SyncOutput struct {
	Body *syncer.Result
}

// Sync runs an order sync and waits for it to finish.
func (h *SyncHandler) Sync(ctx context.Context, _ *struct{}) (*SyncOutput, error) {
	res, err := h.runner.Run(ctx, syncer.TriggerManual)
	if errors.Is(err, syncer.ErrSyncInProgress) {
		return nil, huma.Error409Conflict(err.Error())
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("sync failed: " + err.Error())
	}
	return &SyncOutput{Body: res}, nil
}

// ListSyncRunsInput is the input for listing sync runs.
type ListSyncRunsInput struct {
	Limit int `query:"limit" default:"20" minimum:"1" maximum:"200" doc:"Number of runs to return"`
}

// ListSyncRunsOutput is the response for listing sync runs.
type ListSyncRunsOutput struct {
	Body struct {
		Runs []domain.SyncRun `json:"runs"`
	}
}

// ListSyncRuns returns the most recent sync runs.
func (h *SyncHandler) ListSyncRuns(
	ctx context.Context,
	input *ListSyncRunsInput,
) (*ListSyncRunsOutput, error) {
	runs, err := h.store.ListSyncRuns(ctx, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing sync runs failed: " + err.Error())
	}

	resp := &ListSyncRunsOutput{}
	resp.Body.Runs = runs
	if resp.Body.Runs == nil {
		resp.Body.Runs = []domain.SyncRun{}
	}
	return resp, nil
}

// RegisterSyncRoutes registers sync endpoints with the Huma API.
func RegisterSyncRoutes(api huma.API, h *SyncHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-sync",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync",
		Summary:     "Trigger an order sync",
		Description: "Lists orders in the configured statuses, fetches the ones " +
			"not already stored, and upserts them.",
		Tags:   []string{"sync"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Sync)

	huma.Register(api, huma.Operation{
		OperationID: "list-sync-runs",
		Method:      http.MethodGet,
		Path:        "/api/v1/sync/runs",
		Summary:     "List sync runs",
		Description: "Returns the most recent order sync runs, newest first.",
		Tags:        []string{"sync"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListSyncRuns)
}
