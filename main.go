package main

import (
	"fmt"
	"os"

	"github.com/temirov/ghzero/cmd/cli"
	"github.com/temirov/ghzero/internal/errorhandler"
)

const (
	exitErrorTemplateConstant = "❌ %v\n"
)

// main executes the ghzero command-line application.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}
	if !errorhandler.IsReported(executionError) {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	}
	os.Exit(errorhandler.ExitCode(executionError))
}
