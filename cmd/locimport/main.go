package main

import "bookstore/cmd/locimport/commands"

func main() {
	commands.Execute()
}
