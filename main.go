package main

import "github.com/nextlevelbuilder/miniagent/cmd"

func main() {
	cmd.Execute()
}
