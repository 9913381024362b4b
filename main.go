package main

import "github.com/iwantdrugsxd/mind-ease/cmd"

func main() {
	cmd.Execute()
}
