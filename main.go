package main

import "github.com/jsphweid/tonerow/cmd"

func main() {
	cmd.Execute()
}
