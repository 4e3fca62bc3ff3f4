package main

import "bookshelf/cmd"

func main() {
	cmd.Execute()
}
