package main

import (
	"os"

	"github.com/rustyeddy/puestos/cmd/puestos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
