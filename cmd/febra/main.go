package main

import "github.com/terraincognita07/febra/internal/cli"

func main() {
	cli.Execute()
}
