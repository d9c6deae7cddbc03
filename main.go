package main

import (
	"os"

	"github.com/nlebele/dyscreen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
