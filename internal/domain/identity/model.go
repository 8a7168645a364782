package identity

import "time"

// Client is the durable per-installation identity. Exactly one live client
// exists at any time; it is replaced only by an explicit local reset.
type Client struct {
	ID        string
	CreatedAt time.Time
}

// Session identifies one sitting through the schedule. Optional: recordings
// made outside a session are attributed to the client alone.
type Session struct {
	ID        string
	ClientID  string
	StartedAt time.Time
	EndedAt   *time.Time
}
