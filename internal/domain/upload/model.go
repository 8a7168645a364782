package upload

import "time"

// Phase tracks the two-phase transfer state machine for one recording:
//
//	Pending -> Initiating -> Transferring -> {Succeeded | Failed}
//
// There is no partial success: a recording is either fully transferred or
// treated as not uploaded.
type Phase string

const (
	PhasePending      Phase = "Pending"
	PhaseInitiating   Phase = "Initiating"
	PhaseTransferring Phase = "Transferring"
	PhaseSucceeded    Phase = "Succeeded"
	PhaseFailed       Phase = "Failed"
)

// Outcome reports the terminal result of an upload attempt. TicketObtained
// lets callers distinguish "never started" from "ticket obtained but transfer
// failed" when deciding retry UX.
type Outcome struct {
	Phase          Phase
	TicketObtained bool
	Err            error
}

// Succeeded reports whether both legs completed.
func (o Outcome) Succeeded() bool {
	return o.Phase == PhaseSucceeded
}

// Recording is one captured take queued for upload. The byte buffer stays
// owned by the caller: a failed upload leaves it intact for a manual retry.
type Recording struct {
	Filename    string
	Data        []byte
	RecordingID string
	ClientID    string
	SessionID   *string
	Duration    *float64
	CapturedAt  time.Time
}

// InitiateRequest is the metadata sent to the backend when requesting an
// upload ticket.
type InitiateRequest struct {
	Filename    string
	ContentType string
	ClientID    string
	SessionID   *string
	RecordingID string
	Timestamp   string
	Duration    *float64
	Language    string
}
