package main

import "github.com/keurnel/x64dis/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
