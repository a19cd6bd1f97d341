package main

import (
	"os"

	"github.com/echosistema/ironmonger/cmd"
)

func main() {
	// Commands print their own failure messages; cobra prints usage errors.
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
