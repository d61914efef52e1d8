package main

import "blog/cmd"

func main() {
	cmd.Execute()
}
