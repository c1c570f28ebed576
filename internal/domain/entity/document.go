package entity

// Document is the persisted shape: the full bell list, the vacation window and
// the last-used TTS parameters.
type Document struct {
	Bells        []Bell       `json:"bells"`
	Vacation     Vacation     `json:"vacation"`
	LastDefaults *TTSDefaults `json:"last_defaults,omitempty"`
}

// DefaultDocument is the state of a fresh install: no bells, vacation off.
func DefaultDocument() *Document {
	return &Document{Bells: []Bell{}}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{
		Bells:    make([]Bell, 0, len(d.Bells)),
		Vacation: d.Vacation,
	}
	for _, b := range d.Bells {
		c.Bells = append(c.Bells, b.Clone())
	}
	if d.LastDefaults != nil {
		ld := *d.LastDefaults
		c.LastDefaults = &ld
	}
	return c
}

// DataSnapshot is the read-only composite returned by the get-data operation.
type DataSnapshot struct {
	Bells        []Bell       `json:"bells"`
	Vacation     Vacation     `json:"vacation"`
	LastDefaults *TTSDefaults `json:"last_defaults,omitempty"`
	GlobalTTS    TTSDefaults  `json:"global_tts"`
	Version      int          `json:"version"`
}
