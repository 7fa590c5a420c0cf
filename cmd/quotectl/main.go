// Package main provides quotectl, the operator CLI for the quote engine.
package main

import (
	"fmt"
	"os"

	"github.com/handyline/handyline-api/libs/go/helpers"
	"github.com/handyline/handyline-api/libs/go/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logger.InitLogger(helpers.GetEnvOrDefault("STAGE", helpers.StageLocal))
	defer func() { _ = logger.Sync() }()

	if err := rootCmd(defaultStoreOpener).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
