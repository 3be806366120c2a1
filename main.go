package main

import "github.com/pygoscelis/penguin-cli/cmd"

func main() {
	cmd.Execute()
}
