// Command uhri selects, normalizes and reports on a recommendation corpus
// export.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
