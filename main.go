package main

import "github.com/alexiusacademia/gorcsec/cmd"

func main() {
	cmd.Execute()
}
