// Package main is the entry point for the moodtrack CLI.
package main

import (
	"errors"
	"io/fs"

	"github.com/huangsam/moodtrack/cmd"
	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		contract.LogWarn("Cannot load .env file", err)
	}

	err := cmd.Execute()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Cannot stop profiling", perr)
	}
	store.CloseStores()
	if err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
