package main

import "github.com/KaramelBytes/surveyscope/cmd"

func main() {
	cmd.Execute()
}
