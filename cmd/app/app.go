package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DRSN-tech/foodie-cart/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand(cli.EnvOpener)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
