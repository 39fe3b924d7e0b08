package main

import "github.com/mcoot/scrabblesolver/internal/cli"

func main() {
	cli.Execute()
}
