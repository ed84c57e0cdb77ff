package main

import (
	"fmt"
	"os"

	"adminpanel/cmd/admind/cli"
)

func main() {
	root := cli.NewRootCommand()

	root.AddCommand(cli.NewServeCommand())
	root.AddCommand(cli.NewSeedCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
