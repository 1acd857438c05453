// Package output renders command results as styled text, JSON, or YAML.
package output
