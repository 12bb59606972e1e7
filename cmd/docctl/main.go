package main

import "doc-compare/internal/cli"

func main() {
	cli.Execute()
}
