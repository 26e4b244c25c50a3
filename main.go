package main

import "github.com/they4kman/gridsweep/cmd"

func main() {
	cmd.Execute()
}
