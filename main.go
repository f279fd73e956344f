package main

import "github.com/rallyforge/benefits-engine/cmd"

func main() {
	cmd.Execute()
}
