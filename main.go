package main

import "blank-video/cmd"

func main() {
	cmd.Execute()
}
