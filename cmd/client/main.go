package main

import (
	"medvault/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
