package models

// Status is the lifecycle phase of an auction. It is derived from the clock
// on every read; only StatusDeleted is stored.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusRunning    Status = "RUNNING"
	StatusTerminated Status = "TERMINATED"
	StatusDeleted    Status = "DELETED"
)

// ParseStatus matches s exactly against the known phases.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusNotStarted, StatusRunning, StatusTerminated, StatusDeleted:
		return st, true
	}
	return "", false
}

func (s Status) String() string {
	return string(s)
}
