package main

import "github.com/saadjs/fitlife-cli/cmd/fitlife"

func main() {
	fitlife.Execute()
}
