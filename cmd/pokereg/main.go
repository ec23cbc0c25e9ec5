package main

import "github.com/pokearch/registry/internal/cli"

func main() {
	cli.Execute()
}
