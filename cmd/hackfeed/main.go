package main

import "github.com/hackeroos/hackfeed/internal/cli"

func main() {
	cli.Execute()
}
