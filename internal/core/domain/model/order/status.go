package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING ──> IN_PRODUCTION ──> SHIPPED ──> DELIVERED (terminal)
//	    │              │              │
//	    └──────────────┴──────────────┴─────> CANCELLED (terminal)
//
// No transition graph is enforced between the non-terminal states: the seller
// may move an order to any non-terminal status at any time. DELIVERED and
// CANCELLED are terminal; the only permitted "transition" out of them is a
// same-status no-op.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending is the initial status of a newly created order.
	Pending

	// InProduction indicates the pieces are being made.
	InProduction

	// Shipped indicates the order left for delivery.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and its stock restored.
	// Terminal, reachable from any non-delivered state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pending:       "PENDING",
		InProduction:  "IN_PRODUCTION",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "PENDING",
		InProduction: "IN_PRODUCTION",
		Shipped:      "SHIPPED",
		Delivered:    "DELIVERED",
		Cancelled:    "CANCELLED",
	}
}

// StatusFromString parses a status name as received over HTTP or read from
// persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the status name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
