package main

import "github.com/lepinkainen/authorscout/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
