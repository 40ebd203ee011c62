package main

import (
	"os"

	"github.com/skillbridge/skillbridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
