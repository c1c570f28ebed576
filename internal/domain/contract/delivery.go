package contract

import "context"

// Announcement carries the resolved parameters of one TTS announce call.
type Announcement struct {
	Provider string
	Targets  []string
	Message  string
	Language string // empty means provider default
	Voice    string // empty means provider default
}

// Announcer speaks a message on the target players.
type Announcer interface {
	Announce(ctx context.Context, a Announcement) error
}

// MediaPlayer plays a media item on the target players, optionally as an
// announcement that ducks whatever is currently playing.
type MediaPlayer interface {
	PlayMedia(ctx context.Context, targets []string, mediaID, mediaType string, announce bool) error
}
