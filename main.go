package main

import "github.com/nathanhack/ternaryecc/cmd"

func main() {
	cmd.Execute()
}
