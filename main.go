package main

import (
	"os"

	"github.com/ad-si/cai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
