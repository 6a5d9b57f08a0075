package main

import (
	"log"
	"os"

	"tableflip.dev/datepicker/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		if commands.Quiet(err) {
			os.Exit(1)
		}
		log.Fatalf("error during command execution: %v", err)
	}
}
