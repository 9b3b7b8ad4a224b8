// Command decicalc multiplies arbitrary-precision decimals with several
// algorithms and checks that they agree.
package main

import (
	"context"
	"os"

	"github.com/agbru/decicalc/internal/app"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(app.ExitCodeForError(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
