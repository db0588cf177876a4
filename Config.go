package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

const DefaultListenAddr = ":8080"

const DefaultLogLevel = "info"

const (
	TextualDependencyFinderName   = "textual"
	ReferenceDependencyFinderName = "reference"
)

var MissingDatabasePathError = errors.New("database file path is required (--database or DATABASE_FILEPATH)")

var InvalidWebhookWorkersError = errors.New("webhook workers count should be positive")

var InvalidDependencyFinderError = fmt.Errorf(
	"dependency finder should be one of (%s, %s)", TextualDependencyFinderName, ReferenceDependencyFinderName,
)

type Config struct {
	DatabasePath     string
	ListenAddr       string
	WebhookWorkers   int
	LogLevel         string
	DependencyFinder string
}

func (config Config) Validate() error {
	if config.DatabasePath == "" {
		return MissingDatabasePathError
	}

	if config.WebhookWorkers < 1 {
		return InvalidWebhookWorkersError
	}

	if config.DependencyFinder != TextualDependencyFinderName && config.DependencyFinder != ReferenceDependencyFinderName {
		return InvalidDependencyFinderError
	}

	_, err := ParseLogLevel(config.LogLevel)
	return err
}

// NewRootCommand builds the `serve` command; every flag falls back to its environment variable
func NewRootCommand() *cobra.Command {
	config := Config{}

	command := &cobra.Command{
		Use:           "serve",
		Short:         "Serve dynamic tables with spreadsheet formulas over HTTP",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}

			return RunApp(config)
		},
	}

	flags := command.Flags()
	flags.StringVar(&config.DatabasePath, "database", os.Getenv("DATABASE_FILEPATH"), "path to the bbolt database file")
	flags.StringVar(&config.ListenAddr, "listen", envOrDefault("LISTEN_ADDR", DefaultListenAddr), "HTTP listen address")
	flags.IntVar(&config.WebhookWorkers, "webhook-workers", envIntOrDefault("WEBHOOK_WORKERS", DefaultWebhookWorkersCount), "number of webhook sender workers")
	flags.StringVar(&config.LogLevel, "log-level", envOrDefault("LOG_LEVEL", DefaultLogLevel), "log level (debug, info, warn, error)")
	flags.StringVar(&config.DependencyFinder, "dependency-finder", envOrDefault("DEPENDENCY_FINDER", TextualDependencyFinderName), "dependent formulas lookup (textual, reference)")

	return command
}

func envOrDefault(name string, defaultValue string) string {
	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value
	}
	return defaultValue
}

func envIntOrDefault(name string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return defaultValue
	}
	return value
}
