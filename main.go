package main

import (
	"github.com/temizmarket/eticaret/cmd"
)

func main() {
	cmd.Start()
}
