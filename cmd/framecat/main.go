package main

import "github.com/googollee/go-framing/cmd/framecat/cmd"

func main() {
	cmd.Execute()
}
