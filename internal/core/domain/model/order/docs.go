// Package order contains the order aggregate: the order itself, its line
// items, the lifecycle status state machine and the payment method/state
// enums carried on the order.
//
// The aggregate owns its items; items are only created through the order's
// constructors and their subtotal is always recomputed from quantity and
// unit price, never stored stale.
package order
