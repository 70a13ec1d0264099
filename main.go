package main

import "ratecard/cmd"

func main() {
	cmd.Execute()
}
