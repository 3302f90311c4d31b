package render

import "context"

// Modal is the video player overlay. Its frame source is empty while closed.
type Modal struct {
	Visible bool
	VideoID string
	Title   string
	Src     string
}

// Open loads the action's embed address into the frame.
func (m *Modal) Open(a PlayAction) {
	m.Visible = true
	m.VideoID = a.VideoID
	m.Title = a.Title
	m.Src = a.EmbedURL
}

// Close stops playback by clearing the frame.
func (m *Modal) Close() {
	*m = Modal{}
}

// Tracker records that a video was played.
type Tracker interface {
	TrackVideoPlay(ctx context.Context, videoID, title string)
}

// Play opens the modal for the action and then records the play.
func Play(ctx context.Context, m *Modal, a PlayAction, t Tracker) {
	m.Open(a)
	if t != nil {
		t.TrackVideoPlay(ctx, a.VideoID, a.Title)
	}
}
