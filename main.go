package main

import "github.com/mklnz/stashkeep/cmd"

func main() {
	cmd.Execute()
}
