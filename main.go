package main

import "github.com/Hxfrzc/galinfo/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
