package commands

import (
	"fmt"
	"os"

	"diskrelay/pkg/logger"
)

func ExitOnError(err error) {
	// The logger may not be initialised yet when config loading fails.
	fmt.Fprintln(os.Stderr, "diskrelay:", err)
	logger.Error("diskrelay error", "err", err.Error())
	logger.Sync()
	os.Exit(1)
}
