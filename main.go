package main

import (
	"os"

	"github.com/harunkazanli9/beontrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
