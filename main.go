package main

import "sitepay/cmd"

func main() {
	cmd.Execute()
}
