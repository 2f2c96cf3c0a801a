package main

import (
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/walkthrough/internal/infrastructure/logging"
)

func main() {
	log, err := logging.New(logging.Options{Writer: os.Stderr, Level: "info", HumanReadable: true, Layer: "cli"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	app := &AppContext{Logger: log}
	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
