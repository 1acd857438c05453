// Package repos lists the authenticated user's GitHub repositories and flattens them into records.
package repos
