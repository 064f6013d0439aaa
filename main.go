package main

import "github.com/mouse-blink/exportgen/cmd"

func main() {
	cmd.Execute()
}
