// Package main is the entry point for the recipebox CLI.
package main

import "github.com/mesh-intelligence/recipebox/internal/cli"

func main() {
	cli.Execute()
}
