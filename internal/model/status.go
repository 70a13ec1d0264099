package model

// Status is the payment status of a project.
type Status int

const (
	StatusPending Status = iota
	StatusPaid
)

// String returns the persisted/displayed form of the status.
func (s Status) String() string {
	if s == StatusPaid {
		return "paid"
	}
	return "pending"
}

// Toggle flips pending to paid and back.
func (s Status) Toggle() Status {
	if s == StatusPaid {
		return StatusPending
	}
	return StatusPaid
}

// ParseStatus reads a persisted status string. Anything that is not
// "paid" reads as pending, so unknown values degrade safely.
func ParseStatus(s string) Status {
	if s == "paid" {
		return StatusPaid
	}
	return StatusPending
}
