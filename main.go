package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/stencil-labs/stencil/internal/cli"
	"github.com/stencil-labs/stencil/internal/scaffold"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes: 0 success, 1 generation or verification failed, 2 invalid
// user input.
const (
	exitRunFailure   = 1
	exitInvalidInput = 2
)

func main() {
	err := cli.Execute(version, commit, date)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var cfgErr *scaffold.ConfigError
	if errors.As(err, &cfgErr) {
		os.Exit(exitInvalidInput)
	}

	var tmplErr *scaffold.TemplateError
	var colErr *scaffold.CollisionError
	if errors.As(err, &tmplErr) || errors.As(err, &colErr) {
		fmt.Fprintln(os.Stderr, "This is a defect in the template catalog, not bad input; please report it.")
	}

	os.Exit(exitRunFailure)
}
