package main

import "pipeflow/cmd"

func main() {
	cmd.Execute()
}
