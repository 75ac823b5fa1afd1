package main

import "mspro-labs/vitrin/cmd"

func main() {
	cmd.Execute()
}
