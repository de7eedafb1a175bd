package main

import (
	"fmt"
	"os"

	"github.com/kapilank-k/product-comparator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
