package main

import "github.com/mhellwig/vvcal/internal/cli"

func main() {
	cli.Execute()
}
