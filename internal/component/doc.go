// Package component provides the shared execution contract for GitHub components:
// schema validation, the token requirement, operation dispatch, and result wrapping.
package component
