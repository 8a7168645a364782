package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/upload"
)

type uploadMetadata struct {
	ClientID    string   `json:"clientId"`
	SessionID   *string  `json:"sessionId,omitempty"`
	RecordingID string   `json:"recordingId,omitempty"`
	ContentType string   `json:"contentType"`
	Timestamp   string   `json:"timestamp"`
	Duration    *float64 `json:"duration,omitempty"`
	Language    string   `json:"language,omitempty"`
}

type initUploadRequest struct {
	Filename string         `json:"filename"`
	Metadata uploadMetadata `json:"metadata"`
}

type initUploadResponse struct {
	PresignedURL string `json:"presignedUrl"`
}

// InitiateUpload requests a single-use upload ticket. Implements
// upload.Backend.
func (c *Client) InitiateUpload(ctx context.Context, req upload.InitiateRequest) (string, error) {
	body, err := json.Marshal(initUploadRequest{
		Filename: req.Filename,
		Metadata: uploadMetadata{
			ClientID:    req.ClientID,
			SessionID:   req.SessionID,
			RecordingID: req.RecordingID,
			ContentType: req.ContentType,
			Timestamp:   req.Timestamp,
			Duration:    req.Duration,
			Language:    req.Language,
		},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/upload", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("initiating upload: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccessStatus(resp.StatusCode) {
		return "", fmt.Errorf("upload endpoint returned status %d", resp.StatusCode)
	}

	var out initUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}
	if out.PresignedURL == "" {
		return "", fmt.Errorf("upload endpoint returned no presigned URL")
	}
	return out.PresignedURL, nil
}

// Put transfers recording bytes directly to a presigned URL. Implements
// upload.Transferrer. The content type must match the one sent at initiate.
func (c *Client) Put(ctx context.Context, url, contentType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("transferring bytes: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccessStatus(resp.StatusCode) {
		return fmt.Errorf("blob endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
