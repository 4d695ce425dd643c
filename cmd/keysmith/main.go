// Package main provides the keysmith CLI for scoring and generating passwords.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
