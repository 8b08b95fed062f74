package main

import "github.com/graysonarts/jdexmd/cmd/jdexmd/cmd"

func main() {
	cmd.Execute()
}
