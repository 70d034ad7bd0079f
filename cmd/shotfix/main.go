package main

import (
	"context"
	"fmt"
	"os"

	"shotfix/internal/cli"
	appErrors "shotfix/internal/errors"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).ExecuteContext(context.Background()); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
