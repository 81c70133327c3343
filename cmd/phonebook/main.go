package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"phonebook/config"
	"phonebook/directory"
	"phonebook/scenario"
	"phonebook/storage"

	"github.com/golang-cz/devslog"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] [scenario.yaml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *configPath, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, scenarioPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scenarioPath != "" {
		cfg.Scenario = scenarioPath
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: level},
	}))

	kind, err := storage.ParseKind(cfg.Storage)
	if err != nil {
		return err
	}
	book, err := directory.New(
		directory.WithStorage(kind),
		directory.WithCodec(cfg.Codec),
		directory.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	sc, err := loadScenario(cfg.Scenario)
	if err != nil {
		return err
	}
	logger.Info("running scenario", slog.String("path", cfg.Scenario), slog.Int("steps", len(sc.Steps)))

	results, runErr := scenario.Run(ctx, book, sc)

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	if runErr != nil {
		return runErr
	}
	logger.Info("scenario passed", slog.Int("users", book.Size()), slog.Int("calls", book.CallCount()))
	return nil
}

func loadScenario(path string) (scenario.Scenario, error) {
	var r io.Reader = os.Stdin
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return scenario.Scenario{}, fmt.Errorf("opening scenario: %w", err)
		}
		defer f.Close()
		r = f
	}

	return scenario.Load(r)
}
