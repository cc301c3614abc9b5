package commands

import (
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/trip/pkg/commands/options"
	"tableflip.dev/trip/pkg/config"
	"tableflip.dev/trip/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the trip API over the local store",
		Long: base.Wrap80("Run the trip API over the local store at data_path, for development " +
			"and offline use. Point other clients at it with api_url."),
		Example: `
trip serve
trip serve --listen 127.0.0.1:8080 --data-path /tmp/trips
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := options.Store(cfg)
			if err != nil {
				return err
			}
			s := serve.Serve{
				Services: svc,
				Logger:   cfg.JSONLogger(os.Stdout),
				Addr:     cfg.Listen,
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().String("listen", "", "Address to bind (listen).")
	_ = v.BindPFlag(config.KeyListen, cmd.Flags().Lookup("listen"))
	topLevel.AddCommand(cmd)
}
