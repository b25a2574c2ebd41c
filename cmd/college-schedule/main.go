package main

import (
	"os"

	"github.com/ytget/college-schedule/cmd/college-schedule/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
