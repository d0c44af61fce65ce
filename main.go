package main

import "github.com/mouse-blink/equate/cmd"

func main() {
	cmd.Execute()
}
