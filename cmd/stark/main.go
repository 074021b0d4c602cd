package main

import (
	"os"

	"github.com/srinivasagudi0/Stark-Assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
