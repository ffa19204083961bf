package main

import (
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/cli"
)

func main() {
	cli.Execute()
}
