package main

import "asset-cache/cmd"

func main() {
	cmd.Execute()
}
