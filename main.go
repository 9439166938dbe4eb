package main

import "github.com/kconf-dev/kconf/cmd"

func main() {
	cmd.Execute()
}
