package panel

// RequestStatus tracks the single outstanding request a panel may have.
// A panel ignores new submissions while Pending; the guard is released on
// every settle path, success or failure.
type RequestStatus int

const (
	StatusIdle RequestStatus = iota
	StatusPending
	StatusSucceeded
	StatusFailed
)

func (s RequestStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
