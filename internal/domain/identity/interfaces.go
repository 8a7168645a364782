package identity

import "context"

// Store persists the local identity hierarchy.
type Store interface {
	Client(ctx context.Context) (*Client, error)
	CreateClient(ctx context.Context, client *Client) error
	CreateSession(ctx context.Context, sess *Session) error
	EndSession(ctx context.Context, sessionID string) error
	// Reset atomically discards all local state and installs a new client.
	Reset(ctx context.Context, newClient *Client) error
}

// Deleter issues remote erasure requests scoped by the identity hierarchy.
// Each call is one outbound request; repeating a delete of an already-deleted
// target is not an error the caller must distinguish.
type Deleter interface {
	DeleteClient(ctx context.Context, clientID string) error
	DeleteSession(ctx context.Context, clientID, sessionID string) error
	DeleteRecording(ctx context.Context, clientID, sessionID, recordingID string) error
}
