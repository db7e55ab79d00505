package main

import "minimcu/cmd"

func main() {
	cmd.Execute()
}
