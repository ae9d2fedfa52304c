package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/quizboss/internal/audio"
	"github.com/tomz197/quizboss/internal/config"
	"github.com/tomz197/quizboss/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	// The terminal belongs to the canvas, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("QUIZBOSS_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(config.GetEnv("QUIZBOSS_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}

	sound := audio.NewManager(logger)
	if config.GetEnv("QUIZBOSS_AUDIO", "on") != "off" {
		// Init logs its own failure; the game runs silent without a device.
		_ = sound.Init()
	}
	defer sound.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{Audio: sound, Logger: logger}); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
