package payment

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status is the local view of a payment's lifecycle. PAID and CANCELED are
// terminal: once reached, no provider notification changes the status again.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	Pending
	Paid
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pending:       "PENDING",
		Paid:          "PAID",
		Canceled:      "CANCELED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "PENDING",
		Paid:     "PAID",
		Canceled: "CANCELED",
	}
}

// StatusFromString parses a status name as read from persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// StatusFromProvider maps a provider status string to the local status.
// Unrecognized values map to Pending, so a new provider state never flips a
// payment into a terminal status by accident.
func StatusFromProvider(providerStatus string) Status {
	switch providerStatus {
	case "approved":
		return Paid
	case "cancelled", "rejected":
		return Canceled
	default:
		return Pending
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// IsTerminal reports whether the status admits no further changes.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Canceled
}

// String returns the status name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
