package main

import "github.com/notargets/polylib/cmd"

func main() {
	cmd.Execute()
}
