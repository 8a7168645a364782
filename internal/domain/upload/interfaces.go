package upload

import "context"

// Backend issues single-use, capability-scoped upload URLs. Tickets must not
// be reused across retries.
type Backend interface {
	InitiateUpload(ctx context.Context, req InitiateRequest) (presignedURL string, err error)
}

// Transferrer moves captured bytes directly to blob storage at a presigned
// URL. Success is determined solely by the transfer's own signal.
type Transferrer interface {
	Put(ctx context.Context, url, contentType string, data []byte) error
}
