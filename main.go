package main

import "github.com/avnit77/recipes/cmd"

func main() {
	cmd.Execute()
}
