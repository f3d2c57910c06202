package main

import "github.com/simonhull/apetag/cmd/apetag/cmd"

func main() {
	cmd.Execute()
}
