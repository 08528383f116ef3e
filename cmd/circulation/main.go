// Command circulation is the operator CLI for the circulation rule engine.
// It runs the batch sweeps, drives the borrow/return/payment workflows and
// serves the read views against the configured postgres store.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
