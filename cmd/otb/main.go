package main

import "github.com/OpenTraceLab/OpenTraceBitstream/cmd/otb/cmd"

func main() {
	cmd.Execute()
}
