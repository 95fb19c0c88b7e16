package cli

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
)

// Run parses args and executes the requested action
func Run(args []string) error {
	options := &Options{}
	_, err := flags.ParseArgs(options, args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	service, err := New(ctx, options, os.Stdout)
	if err != nil {
		return err
	}
	defer service.Close()
	return service.Run(ctx)
}
