package main

import "record-manager/cmd"

func main() {
	cmd.Execute()
}
