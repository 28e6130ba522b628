package main

import (
	"fmt"
	"os"

	"github.com/abdidvp/namefix/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "namefix:", err)
		os.Exit(1)
	}
}
