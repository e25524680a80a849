package app

import (
	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/placeholder"
	"github.com/MKhiriev/bootcamp-webapi/internal/source"
)

// Sources builds the configuration source chain described by opts. Files are
// included only when their path is set; the remote source is always present
// and stays inactive until configSource.remote.url is set by a lower layer;
// its settings may reference other local keys with placeholders.
func Sources(opts *config.Options, log *logger.Logger) ([]source.Source, error) {
	sources := []source.Source{source.Defaults()}

	if opts.JSONFilePath != "" {
		sources = append(sources, source.NewJSONFile(opts.JSONFilePath))
	}
	if opts.YAMLFilePath != "" {
		sources = append(sources, source.NewYAMLFile(opts.YAMLFilePath))
	}
	if opts.HCLFilePath != "" {
		sources = append(sources, source.NewHCLFile(opts.HCLFilePath))
	}

	sources = append(sources,
		source.NewEnv(opts.EnvPrefix),
		source.NewCloudFoundry(),
		source.NewRemote(log, source.WithSettingsExpander(placeholder.ResolveKeys)),
	)

	cli, err := source.NewCommandLine(opts.CommandLineOverrides())
	if err != nil {
		return nil, err
	}
	return append(sources, cli), nil
}
