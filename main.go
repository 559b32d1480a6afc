package main

import "github.com/Daskott/postbook/cmd"

func main() {
	cmd.Execute()
}
