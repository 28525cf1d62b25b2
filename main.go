package main

import "github.com/KaramelBytes/goldhedge-cli/cmd"

func main() {
	cmd.Execute()
}
