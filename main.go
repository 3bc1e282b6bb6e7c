package main

import "faredash/cmd"

func main() {
	cmd.Execute()
}
