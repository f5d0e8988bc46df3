package main

import (
	"github.com/ashhadm/CS-249/cmd"
)

func main() {
	cmd.RootCmd.AddCommand(docsCmd)
	cmd.Execute() // initialize cobra commands
}
