package main

import "github.com/notargets/turbfield/cmd"

func main() {
	cmd.Execute()
}
