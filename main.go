package main

import "github.com/edespino/cbshell/cmd"

func main() {
	cmd.Execute()
}
