// Package errorhandler classifies failures into the fixed error-code taxonomy,
// formats user-facing messages with remediation hints, and converts errors
// into failed result envelopes.
package errorhandler
