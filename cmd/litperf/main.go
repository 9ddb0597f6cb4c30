package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/litperf/internal/app"
	apperrors "github.com/agbru/litperf/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		fmt.Fprintln(os.Stderr, "litperf:", err)
		os.Exit(apperrors.ExitCodeFor(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
