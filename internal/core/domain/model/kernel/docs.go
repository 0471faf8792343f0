// Package kernel contains shared value objects used across all aggregates:
// UUID identifiers and fixed-point Money amounts. Both are immutable and
// safe for concurrent use.
package kernel
