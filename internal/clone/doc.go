// Package clone resolves repository identifiers to clone URLs and runs git clone into a guarded
// target directory.
package clone
