package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/alvaroalonsobabbel/srs-tetris/client"
	"github.com/alvaroalonsobabbel/srs-tetris/config"
	"github.com/eiannone/keyboard"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[24;0H\n\r\033[?25h"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}

	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("unable to open log file: %v", err)
		}
		defer f.Close()
		w = f
	}
	logger := cfg.NewLogger(w)

	c, err := client.New(logger, cfg)
	if err != nil {
		log.Fatalf("unable to start client: %v", err)
	}
	defer func() {
		if err := keyboard.Close(); err != nil {
			logger.Error("unable to close keyboard", slog.String("error", err.Error()))
		}
	}()

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)
	c.Start()
}
