package main

import (
	"os"

	"github.com/studyplan/qengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
