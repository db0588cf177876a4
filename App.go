package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

func RunApp(config Config) error {
	gin.SetMode(gin.ReleaseMode)

	logger, err := NewLogger(config.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	serviceContainer, err := BuildServiceContainer(config, logger)

	if err == nil {
		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()
		defer serviceContainer.Database.Close()

		logger.Info("listening", "addr", config.ListenAddr, "database", config.DatabasePath)
		err = http.ListenAndServe(config.ListenAddr, serviceContainer.Router)
	}

	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
