package booking

// Status is the lifecycle state of a booking. Transitions are owner-driven;
// money fields are frozen once the booking is written.
type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine permits moving to target.
// pending -> confirmed|cancelled, confirmed -> completed|cancelled, and any
// state may move to rescheduled.
func (s Status) CanTransitionTo(target Status) bool {
	if !target.IsValid() || target == s {
		return false
	}
	if target == StatusRescheduled {
		return true
	}
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}
