package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		// A canceled context means the user interrupted the run.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "scribe:", err)
		}
		os.Exit(1)
	}
}
