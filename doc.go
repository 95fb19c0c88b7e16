// Package policyadmin wires the insurance policy administration API client from configuration.
//
// ClientOptions can be populated from CLI flags or a YAML file (see LoadClientOptions) and
// NewClient turns them into a request pipeline with the selected session store, logger and
// cookie jar. The typed resources live in the resource package; the pipeline lives in client.
//
// Example:
//
//	options, _ := policyadmin.LoadClientOptions(ctx, "~/.policyadmin/config.yaml")
//	cli, _ := policyadmin.NewClient(ctx, options)
//	defer cli.Close()
//	stats := resource.New(cli).Dashboard(ctx)
package policyadmin
