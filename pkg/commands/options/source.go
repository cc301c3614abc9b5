package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trip/pkg/client"
	"tableflip.dev/trip/pkg/config"
	"tableflip.dev/trip/pkg/service"
	"tableflip.dev/trip/pkg/store"
)

// SourceOptions picks where trip data comes from: the trip API or the local store.
type SourceOptions struct {
	Local bool
}

func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.PersistentFlags().BoolVar(&o.Local, "local", false,
		"Use the local store at data_path instead of the trip API.")
}

// Services returns the data services for cfg.
func (o *SourceOptions) Services(cfg *config.Config) (service.Set, error) {
	if !o.Local {
		return client.New(cfg.APIURL).Set(), nil
	}
	return Store(cfg)
}

// Store opens the local store configured by cfg.
func Store(cfg *config.Config) (service.Set, error) {
	s, err := store.Load(cfg)
	if err != nil {
		return service.Set{}, err
	}
	return s.Set(), nil
}
