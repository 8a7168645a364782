package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/schedule"
)

// LoadSchedule fetches one schedule by id. Implements schedule.Source.
func (c *Client) LoadSchedule(ctx context.Context, scheduleID string) (*schedule.Schedule, error) {
	endpoint := c.baseURL + "/v1/schedule/" + url.PathEscape(scheduleID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccessStatus(resp.StatusCode) {
		return nil, fmt.Errorf("schedule endpoint returned status %d", resp.StatusCode)
	}

	var sched schedule.Schedule
	if err := json.NewDecoder(resp.Body).Decode(&sched); err != nil {
		return nil, fmt.Errorf("decoding schedule: %w", err)
	}
	return &sched, nil
}

// ThemeListItem wraps one theme in the listing response.
type ThemeListItem struct {
	ID      string         `json:"id"`
	Content schedule.Theme `json:"content"`
}

// LoadThemes fetches all theme groupings.
func (c *Client) LoadThemes(ctx context.Context) ([]ThemeListItem, error) {
	endpoint := c.baseURL + "/v1/theme"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching themes: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccessStatus(resp.StatusCode) {
		return nil, fmt.Errorf("theme endpoint returned status %d", resp.StatusCode)
	}

	var themes []ThemeListItem
	if err := json.NewDecoder(resp.Body).Decode(&themes); err != nil {
		return nil, fmt.Errorf("decoding themes: %w", err)
	}
	return themes, nil
}
