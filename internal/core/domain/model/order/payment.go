package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// PaymentMethod records how the customer intends to pay.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an unset payment method.
	// Unlike the status enums, unset is a legal persisted state: orders may
	// be registered before the customer picks a method.
	PaymentMethodUnknown PaymentMethod = iota

	Cash
	Card
	Pix
	Transfer
	OtherMethod
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "UNKNOWN",
		Cash:                 "CASH",
		Card:                 "CARD",
		Pix:                  "PIX",
		Transfer:             "TRANSFER",
		OtherMethod:          "OTHER",
	}
}

// PaymentMethodFromString parses a payment method name. The empty string maps
// to PaymentMethodUnknown without error.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentMethodUnknown, nil
	}
	for method, str := range getPaymentMethodStrings() {
		if str == s && method != PaymentMethodUnknown {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the payment method name.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// PaymentState summarizes the order's payment situation as shown to the
// seller. It is distinct from the payment aggregate's own status: many
// payment attempts may exist per order, this is the rolled-up view.
type PaymentState int

const (
	PaymentStateUnknown PaymentState = iota
	PaymentPending
	PaymentPaid
	PaymentRefunded
	PaymentCancelled
)

func getPaymentStateStrings() map[PaymentState]string {
	return map[PaymentState]string{
		PaymentStateUnknown: "UNKNOWN",
		PaymentPending:      "PENDING",
		PaymentPaid:         "PAID",
		PaymentRefunded:     "REFUNDED",
		PaymentCancelled:    "CANCELLED",
	}
}

// PaymentStateFromString parses a payment state name. The empty string maps
// to PaymentPending, the default for new orders.
func PaymentStateFromString(s string) (PaymentState, error) {
	if s == "" {
		return PaymentPending, nil
	}
	for state, str := range getPaymentStateStrings() {
		if str == s && state != PaymentStateUnknown {
			return state, nil
		}
	}
	return PaymentStateUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the payment state name.
func (p PaymentState) String() string {
	if str, ok := getPaymentStateStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
