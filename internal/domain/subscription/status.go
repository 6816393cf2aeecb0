package subscription

// Status represents the lifecycle state of a tenant's subscription. The
// billing collaborator owns transitions; this core only reads the value.
type Status string

const (
	StatusTrialing Status = "trialing"
	StatusActive   Status = "active"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
	StatusExpired  Status = "expired"
)

// ValidStatuses is the closed set of statuses accepted from persistence
var ValidStatuses = map[Status]bool{
	StatusTrialing: true,
	StatusActive:   true,
	StatusPastDue:  true,
	StatusCanceled: true,
	StatusExpired:  true,
}

// IsValid checks if the status is one of the defined values
func (s Status) IsValid() bool {
	return ValidStatuses[s]
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// CanUseService reports whether the status grants entitlements. Only active
// and trialing subscriptions do; every other status denies.
func (s Status) CanUseService() bool {
	return s == StatusActive || s == StatusTrialing
}
