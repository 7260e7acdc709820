package main

import "github.com/wakabaloola/visualise-code-structure/cmd"

func main() {
	cmd.Execute()
}
