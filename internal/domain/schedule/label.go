package schedule

import "fmt"

// NonBreakingBlank is rendered in place of an empty label so the status row
// keeps its height.
const NonBreakingBlank = " "

const (
	promptFallback = "Help the researcher"
	mediaFallback  = "Watch or listen"
)

// StatusLabel derives the status line for an element. Prompt items show
// their title or the researcher fallback; recording items show their donation
// progress; untitled non-text media falls back to a listening hint. An empty
// result means the item renders no label.
func StatusLabel(el *DisplayedElement, progress *Progress) string {
	if el == nil {
		return ""
	}
	item := el.Item

	if item.Kind == KindPrompt {
		if item.MetaTitle != nil {
			return *item.MetaTitle
		}
		return promptFallback
	}

	if item.IsRecording && progress != nil {
		return fmt.Sprintf("Donate %d/%d", progress.ItemNumber, progress.TotalCount)
	}

	if item.MetaTitle != nil {
		return *item.MetaTitle
	}
	if item.ItemType != TypeText {
		return mediaFallback
	}
	return ""
}

// LabelOrBlank substitutes a non-breaking blank for an empty label, never an
// empty string.
func LabelOrBlank(label string) string {
	if label == "" {
		return NonBreakingBlank
	}
	return label
}
