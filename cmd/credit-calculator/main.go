// Package main точка входа CLI credit-calculator.
package main

import (
	"os"

	"github.com/cloud-ru/credit-calculator-go/cmd/credit-calculator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
