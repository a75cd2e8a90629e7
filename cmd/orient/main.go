package main

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

const flushTimeout = 2 * time.Second

func main() {
	os.Exit(run())
}

func run() (code int) {
	// A recovered panic leaves code at 1.
	code = 1
	defer sentry.Flush(flushTimeout)
	defer sentry.Recover()

	if err := newRootCommand().Execute(); err != nil {
		sentry.CaptureException(err)
		return 1
	}
	return 0
}
