package main

import "github.com/philipparndt/cadoverlay/cmd"

func main() {
	cmd.Execute()
}
