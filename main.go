package main

import (
	"os"

	"github.com/thenoetrevino/focusflow/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
