package main

import (
	"fmt"
	"os"

	tenki "github.com/tenkiya/tenki-go"
)

func main() {
	if err := tenki.Main(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
