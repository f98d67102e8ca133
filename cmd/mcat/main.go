package main

import (
	"fmt"
	"os"

	"github.com/metacat/cli/pkg/cmd/factory"
	"github.com/metacat/cli/pkg/cmd/root"
)

// overridden at build time via ldflags
var version = "dev"

func main() {
	f := factory.New(version)

	cmd, err := root.NewCmdRoot(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
