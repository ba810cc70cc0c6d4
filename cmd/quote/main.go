// Command quote prices a laundry order from the command line, either with
// the embedded catalog or against a running pricing service.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/guttosm/laundry-pricing/internal/logger"
)

func main() {
	logger.Init("warn", true)

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
