package domain

// Event is one immutable entry in the work-time log. ID is assigned by
// the store on insert and only disambiguates equal timestamps.
type Event struct {
	ID      int64
	Action  Action
	Date    string // yyyy-mm-dd
	Time    string // hh:mm
	Message string
}
