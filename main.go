package main

import (
	"os"

	"github.com/khanhvo/mathgenius/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
