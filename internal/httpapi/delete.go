package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// DeleteClient removes all remote data under a client. Implements part of
// identity.Deleter.
func (c *Client) DeleteClient(ctx context.Context, clientID string) error {
	return c.deleteByPath(ctx, "/v1/upload/"+url.PathEscape(clientID))
}

// DeleteSession removes all remote data under one session.
func (c *Client) DeleteSession(ctx context.Context, clientID, sessionID string) error {
	return c.deleteByPath(ctx, "/v1/upload/"+url.PathEscape(clientID)+"/"+url.PathEscape(sessionID))
}

// DeleteRecording removes one remote recording.
func (c *Client) DeleteRecording(ctx context.Context, clientID, sessionID, recordingID string) error {
	return c.deleteByPath(ctx, "/v1/upload/"+url.PathEscape(clientID)+"/"+url.PathEscape(sessionID)+"/"+url.PathEscape(recordingID))
}

func (c *Client) deleteByPath(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting deletion: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccessStatus(resp.StatusCode) {
		return fmt.Errorf("deletion endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
