package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/bootcamp-webapi/internal/app"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/placeholder"
	"github.com/MKhiriev/bootcamp-webapi/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(int(run()))
}

func run() app.ExitCode {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	opts, log, err := app.Bootstrap(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Message(app.CodeOf(err)), err)
		return app.CodeOf(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	err = app.New(opts, build, log).Run(ctx)
	code := app.CodeOf(err)
	report(log, err, code)
	return code
}

func report(log *logger.Logger, err error, code app.ExitCode) {
	if err == nil {
		log.Info().Msg(app.Message(code))
		return
	}

	event := log.Error().
		Err(err).
		Str("stage", app.StageOf(err)).
		Int("exitCode", int(code))
	if key, ok := placeholder.KeyOf(err); ok {
		event = event.Str("key", key)
	}
	event.Msg(app.Message(code))
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
