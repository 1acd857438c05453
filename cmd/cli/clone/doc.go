// Package clone builds the clone command.
package clone
