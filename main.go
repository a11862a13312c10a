package main

import (
	"os"

	"github.com/Rakshit-11/CareerFinder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
