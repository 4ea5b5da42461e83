package main

import "condo-cli/cmd"

func main() {
	cmd.Execute()
}
