package main

import (
	"github.com/leonelquinteros/gotext"

	"github.com/ShomRinn/LabAdventures/cmd"
)

func initGotext() {
	gotext.Configure("po", "en_GB", "default")
}

func main() {
	initGotext()
	cmd.Execute()
}
