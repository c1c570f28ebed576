package domain

import "time"

// Weekday tokens as stored on a bell (lowercase three-letter abbreviations).
const (
	Monday    = "mon"
	Tuesday   = "tue"
	Wednesday = "wed"
	Thursday  = "thu"
	Friday    = "fri"
	Saturday  = "sat"
	Sunday    = "sun"
)

// DayTokens maps Go weekdays to their stored tokens.
var DayTokens = map[time.Weekday]string{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// ValidDayTokens is the accepted set for bell day lists.
var ValidDayTokens = map[string]bool{
	Monday:    true,
	Tuesday:   true,
	Wednesday: true,
	Thursday:  true,
	Friday:    true,
	Saturday:  true,
	Sunday:    true,
}

// DefaultActiveDays represents Monday through Friday.
var DefaultActiveDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday}

// StorageVersion is the version of the persisted document format.
const StorageVersion = 1

// DefaultLanguage is never sent on announce calls; some TTS providers reject
// an explicit "en" while accepting their own default.
const DefaultLanguage = "en"

// DefaultMediaType is used when a bell sound is given as a bare content id.
const DefaultMediaType = "music"

// VacationDateFormat is the layout of vacation window bounds.
const VacationDateFormat = "2006-01-02"
