package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/trip/pkg/commands/options"
	"tableflip.dev/trip/pkg/config"
	"tableflip.dev/trip/pkg/service"
)

var (
	v   = viper.New()
	cfg = &config.Config{}
	src = &options.SourceOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "trip",
		Short: base.Wrap80("Plan trips with friends from the terminal."),
		Long: base.Wrap80("Plan trips with friends from the terminal. " +
			"Settings are read from .trip.yaml in $TRIP_CONFIG_PATH, the working directory " +
			"or the home directory, and from TRIP_* environment variables."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(v)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("api-url", "", "Trip API base URL (api_url).")
	cmd.PersistentFlags().String("data-path", "", "Local store directory (data_path).")
	cmd.PersistentFlags().String("log-level", "", "One of debug, info, warn or error (log_level).")
	_ = v.BindPFlag(config.KeyAPIURL, cmd.PersistentFlags().Lookup("api-url"))
	_ = v.BindPFlag(config.KeyDataPath, cmd.PersistentFlags().Lookup("data-path"))
	_ = v.BindPFlag(config.KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))
	options.AddSourceArgs(cmd, src)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addTrips(topLevel)
	addActivities(topLevel)
	addLinks(topLevel)
	addConfirm(topLevel)
	addServe(topLevel)
	addVersion(topLevel)
}

// services opens the configured data source and a file logger. close releases
// the log file.
func services() (svc service.Set, log *slog.Logger, close func() error, err error) {
	log, close, err = cfg.FileLogger()
	if err != nil {
		return service.Set{}, nil, nil, err
	}
	svc, err = src.Services(cfg)
	if err != nil {
		_ = close()
		return service.Set{}, nil, nil, err
	}
	return svc, log, close, nil
}
