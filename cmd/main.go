package main

import (
	"diskrelay/cmd/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		commands.ExitOnError(err)
	}
}
