package identity

import "context"

// IdentityRepository persists the local identity hierarchy. At most one live
// client row exists at a time.
type IdentityRepository interface {
	Client(ctx context.Context) (*Client, error)
	CreateClient(ctx context.Context, client *Client) error
	CreateSession(ctx context.Context, sess *Session) error
	EndSession(ctx context.Context, sessionID string) error
	// Reset wipes all local state and installs the new client in one
	// transaction.
	Reset(ctx context.Context, newClient *Client) error
}
