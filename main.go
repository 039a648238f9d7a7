package main

import "github.com/healhub/healhub_backend/cmd"

func main() {
	cmd.Execute()
}
