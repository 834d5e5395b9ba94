// Package main is the entry point for the classloc CLI.
package main

import "classloc.dev/pkg/classloc/cmd"

func main() {
	cmd.Execute()
}
