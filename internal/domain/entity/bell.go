package entity

import (
	"encoding/json"
	"time"

	"github.com/familybell/bell-scheduler/internal/domain"
)

// Bell is one recurring announcement rule.
type Bell struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Time        string   `json:"time"` // HH:MM, host-local wall clock
	Days        []string `json:"days"`
	Message     string   `json:"message"`
	Enabled     bool     `json:"enabled"`
	Speakers    []string `json:"speakers"`
	TTSProvider string   `json:"tts_provider,omitempty"`
	TTSVoice    string   `json:"tts_voice,omitempty"`
	TTSLanguage string   `json:"tts_language,omitempty"`
	Sound       *Sound   `json:"sound,omitempty"`
}

// Clone returns a deep copy. Timers capture clones so a pending timer never
// observes later mutations of the stored bell.
func (b Bell) Clone() Bell {
	c := b
	c.Days = append([]string(nil), b.Days...)
	c.Speakers = append([]string(nil), b.Speakers...)
	if b.Sound != nil {
		s := *b.Sound
		c.Sound = &s
	}
	return c
}

// FiresOn reports whether the bell's day list contains the given weekday.
func (b Bell) FiresOn(day time.Weekday) bool {
	token := domain.DayTokens[day]
	for _, d := range b.Days {
		if d == token {
			return true
		}
	}
	return false
}

// Sound is an optional pre-announcement media reference. On the wire it is
// either a bare content id string or a {media_content_id, media_content_type}
// object; a bare string implies the default media type.
type Sound struct {
	MediaContentID   string `json:"media_content_id"`
	MediaContentType string `json:"media_content_type"`
}

func (s *Sound) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		s.MediaContentID = id
		s.MediaContentType = domain.DefaultMediaType
		return nil
	}

	type plain Sound
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Sound(p)
	if s.MediaContentType == "" {
		s.MediaContentType = domain.DefaultMediaType
	}
	return nil
}

// Vacation is the global suppression window. Bounds are YYYY-MM-DD strings,
// empty when unset.
type Vacation struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Enabled bool   `json:"enabled"`
}

// TTSDefaults holds delivery parameters, used both for the global defaults and
// for the last-used cache exposed to the front end.
type TTSDefaults struct {
	Provider string `json:"provider"`
	Voice    string `json:"voice"`
	Language string `json:"language"`
}
