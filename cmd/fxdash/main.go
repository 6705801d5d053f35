package main

import (
	"os"

	"github.com/phill-ed/forex-analytics-dashboard/cmd/fxdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
