package domain

import (
	"time"

	"github.com/google/uuid"
)

// Response is the official answer attached to a QaG. It is a tagged union:
// Kind selects which variant fields are meaningful. A QaG carrying a
// Response is permanently excluded from moderation and support, whatever
// its status field says.
type Response struct {
	ID       uuid.UUID
	QagID    uuid.UUID
	Author   string
	PostDate time.Time
	Kind     ResponseKind

	// TEXT variant
	Text string

	// VIDEO variant
	VideoURL    string
	VideoWidth  int
	VideoHeight int
	Transcript  string
}

// TextBody returns the text body and true when the response is a TEXT variant.
func (r Response) TextBody() (string, bool) {
	if r.Kind != ResponseKindText {
		return "", false
	}
	return r.Text, true
}

// Video returns the video fields and true when the response is a VIDEO variant.
func (r Response) Video() (url string, width, height int, transcript string, ok bool) {
	if r.Kind != ResponseKindVideo {
		return "", 0, 0, "", false
	}
	return r.VideoURL, r.VideoWidth, r.VideoHeight, r.Transcript, true
}
