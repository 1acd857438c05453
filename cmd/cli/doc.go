// Package cli constructs the ghzero command-line interface, wiring the Cobra
// command hierarchy, the Viper configuration loader and zap logging. It
// registers the repos, issues and clone commands and exposes helpers to build
// and execute application instances.
package cli
