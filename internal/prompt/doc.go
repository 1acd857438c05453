// Package prompt asks interactive confirm, select, and free-text questions over plain readers and writers.
package prompt
