package client

import (
	"context"
	"fmt"
	"time"

	"github.com/donaldgifford/jet-merchant/internal/domain"
	"github.com/donaldgifford/jet-merchant/internal/syncer"
)

// Sync triggers an order sync and waits for its summary.
func (c *Client) Sync(ctx context.Context) (*syncer.Result, error) {
	var res syncer.Result
	if err := c.post(ctx, "/api/v1/sync", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListSyncRuns returns the most recent sync runs, newest first.
func (c *Client) ListSyncRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	var out struct {
		Runs []domain.SyncRun `json:"runs"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/sync/runs?limit=%d", limit), &out); err != nil {
		return nil, err
	}
	return out.Runs, nil
}

// Quota is the server's merchant API usage for the current window.
type Quota struct {
	DailyLimit int64      `json:"daily_limit"`
	DailyUsed  int64      `json:"daily_used"`
	Remaining  int64      `json:"remaining"`
	ResetAt    *time.Time `json:"reset_at,omitempty"`
}

// GetQuota returns the server's merchant API quota status.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}
