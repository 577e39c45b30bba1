package main

import (
	"os"

	"github.com/econplay/econquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
