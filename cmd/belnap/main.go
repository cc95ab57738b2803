package main

import (
	"github.com/Coder-Spirit/belnapian/pkg/cmd"
)

func main() {
	cmd.Execute()
}
