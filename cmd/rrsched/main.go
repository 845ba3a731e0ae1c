package main

import (
	"fmt"
	"os"

	"rrsched/internal/cli"
)

func main() {
	err := cli.NewRootCmd().Execute()
	if err != nil && !cli.Silent(err) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.ExitCode(err))
}
