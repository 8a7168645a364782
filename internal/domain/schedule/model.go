package schedule

// ItemKind discriminates the two top-level schedule item families.
type ItemKind string

const (
	KindPrompt ItemKind = "prompt"
	KindMedia  ItemKind = "media"
)

// ItemType refines an item within its kind.
type ItemType string

const (
	TypeAudio       ItemType = "audio"
	TypeVideo       ItemType = "video"
	TypeYleAudio    ItemType = "yle-audio"
	TypeYleVideo    ItemType = "yle-video"
	TypeText        ItemType = "text"
	TypeImage       ItemType = "image"
	TypeChoice      ItemType = "choice"
	TypeMultiChoice ItemType = "multi-choice"
	TypeSuperChoice ItemType = "super-choice"
)

// Item is one unit of campaign content. Items are externally supplied and
// immutable; their order within a schedule is fixed by the source.
type Item struct {
	ItemID          string   `json:"itemId"`
	Kind            ItemKind `json:"kind"`
	ItemType        ItemType `json:"itemType"`
	URL             *string  `json:"url"`
	TypeID          *string  `json:"typeId"`
	Description     string   `json:"description"`
	Options         []string `json:"options"`
	IsRecording     bool     `json:"isRecording"`
	MetaTitle       *string  `json:"metaTitle"`
	OtherEntryLabel *string  `json:"otherEntryLabel,omitempty"`
}

// Schedule is an ordered list of items for one donation run.
type Schedule struct {
	ID          string  `json:"id,omitempty"`
	ScheduleID  *string `json:"scheduleId,omitempty"`
	Description string  `json:"description"`
	Items       []Item  `json:"items"`
}

// Theme groups schedules for presentation.
type Theme struct {
	ID          string   `json:"id,omitempty"`
	Description string   `json:"description"`
	Image       *string  `json:"image,omitempty"`
	ScheduleIDs []string `json:"scheduleIds"`
}

// DisplayedElement is the engine's cursor: the active item plus derived state.
type DisplayedElement struct {
	Item Item
	// Index is the item's zero-based position in the full schedule.
	Index int
	// RecordingOrdinal is the 1-based position within the recording-only
	// subsequence, or 0 when the item is not a recording slot.
	RecordingOrdinal int
}

// Progress locates a recording item within the recording-only subsequence.
type Progress struct {
	ItemNumber int
	TotalCount int
}
