package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/mindful/internal/cli"
	"github.com/rshade/mindful/pkg/version"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}

func run() error {
	return cli.NewRootCmd(version.GetFullVersion()).ExecuteContext(context.Background())
}
