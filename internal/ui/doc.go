// Package ui reports git progress as human-readable console log lines.
package ui
