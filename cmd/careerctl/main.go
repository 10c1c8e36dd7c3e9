// Command careerctl is the terminal front end of careerforge: it collects
// notes, a target role and a tone, calls the generation endpoint and prints
// the LinkedIn bullets, STAR story and headline.
//
// The exit status is 0 on success, 1 when no answer came from the endpoint,
// 2 when the endpoint rejected the request and 3 when it failed to generate.
package main

import (
	"os"

	"github.com/phrazzld/careerforge/internal/client"
	"github.com/phrazzld/careerforge/internal/generation"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitRejected    = 2
	exitServerError = 3
)

func main() {
	os.Exit(exitCode(newRootCmd().Execute()))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case !client.IsStatusError(err):
		return exitFailure
	case generation.KindOf(err) == generation.KindValidation:
		return exitRejected
	default:
		return exitServerError
	}
}
