package main

import (
	cmd "github.com/kerbaras/tirinha/cmd/tirinha"
)

func main() {
	cmd.Execute()
}
