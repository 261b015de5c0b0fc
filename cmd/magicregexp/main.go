// Command magicregexp renders and tries out patterns kept in pattern files.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
