package main

import (
	"os"

	"github.com/starpathlabs/starpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
