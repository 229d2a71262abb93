package main

import "github.com/ShadowPrince001/Labyrinth-Explorer/cmd"

func main() {
	cmd.Execute()
}
