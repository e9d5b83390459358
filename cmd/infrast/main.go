package main

import "github.com/andrescamacho/infrast-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
