// w3cdtf validates and canonicalizes W3C datetime strings.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Parse failures were already reported with their spans.
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
