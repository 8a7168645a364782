package schedule_test

import (
	"testing"

	"github.com/divvun/Kielipankki-donatespeech-backend/internal/domain/schedule"
	"github.com/stretchr/testify/require"
)

func TestStatusLabel(t *testing.T) {
	progress := &schedule.Progress{ItemNumber: 1, TotalCount: 2}

	tests := []struct {
		name     string
		item     schedule.Item
		progress *schedule.Progress
		want     string
	}{
		{
			name: "prompt with title",
			item: schedule.Item{Kind: schedule.KindPrompt, ItemType: schedule.TypeText, MetaTitle: strPtr("About you")},
			want: "About you",
		},
		{
			name: "prompt without title falls back",
			item: schedule.Item{Kind: schedule.KindPrompt, ItemType: schedule.TypeChoice},
			want: "Help the researcher",
		},
		{
			name:     "recording item shows progress",
			item:     schedule.Item{Kind: schedule.KindMedia, ItemType: schedule.TypeAudio, IsRecording: true},
			progress: progress,
			want:     "Donate 1/2",
		},
		{
			name:     "recording item prefers progress over title",
			item:     schedule.Item{Kind: schedule.KindMedia, ItemType: schedule.TypeAudio, IsRecording: true, MetaTitle: strPtr("Read aloud")},
			progress: &schedule.Progress{ItemNumber: 2, TotalCount: 2},
			want:     "Donate 2/2",
		},
		{
			name: "recording item without progress uses title",
			item: schedule.Item{Kind: schedule.KindMedia, ItemType: schedule.TypeAudio, IsRecording: true, MetaTitle: strPtr("Read aloud")},
			want: "Read aloud",
		},
		{
			name: "titled media",
			item: schedule.Item{Kind: schedule.KindMedia, ItemType: schedule.TypeVideo, MetaTitle: strPtr("A short film")},
			want: "A short film",
		},
		{
			name: "untitled media falls back",
			item: schedule.Item{Kind: schedule.KindMedia, ItemType: schedule.TypeYleAudio},
			want: "Watch or listen",
		},
		{
			name: "untitled text media renders nothing",
			item: schedule.Item{Kind: schedule.KindMedia, ItemType: schedule.TypeText},
			want: "",
		},
		{
			name: "titled text media",
			item: schedule.Item{Kind: schedule.KindMedia, ItemType: schedule.TypeText, MetaTitle: strPtr("A story")},
			want: "A story",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := &schedule.DisplayedElement{Item: tt.item}
			require.Equal(t, tt.want, schedule.StatusLabel(el, tt.progress))
		})
	}
}

func TestStatusLabel_NilElement(t *testing.T) {
	require.Equal(t, "", schedule.StatusLabel(nil, nil))
}

func TestLabelOrBlank(t *testing.T) {
	require.Equal(t, " ", schedule.LabelOrBlank(""))
	require.Equal(t, "Donate 1/2", schedule.LabelOrBlank("Donate 1/2"))
}
