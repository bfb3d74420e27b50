package main

import (
	"fmt"
	"os"

	_ "github.com/mtibben/androiddnsfix"
	"github.com/nojima/apitester"
)

func main() {
	if err := apitester.Main(&apitester.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
