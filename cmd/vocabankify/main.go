// Command vocabankify imports vocabulary tables from Word documents into
// Anki and exports them to CSV.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
