package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"InkNotes/internal/board"
	"InkNotes/internal/ink"
	"InkNotes/internal/share"
	"InkNotes/internal/ui"
)

func main() {
	var (
		doShare  = flag.Bool("share", false, "publish the canvas to read-only viewers on the local network")
		doFind   = flag.Bool("find", false, "list shared canvases on the local network and exit")
		port     = flag.Int("port", 8787, "port for the live-share endpoint")
		logLevel = flag.String("log", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log := setupLogger(*logLevel)

	if *doFind {
		if err := share.Browse(func(addr string) {
			fmt.Printf("ws://%s/view\n", addr)
		}); err != nil {
			log.Error("mDNS lookup failed", "error", err)
			os.Exit(1)
		}
		return
	}

	var hub *share.Hub
	status := ""
	if *doShare {
		hub = share.NewHub(log)
		go func() {
			http.Handle("/view", hub)
			if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), nil); err != nil {
				log.Error("share server stopped", "error", err)
			}
		}()
		if server, err := share.Advertise(*port); err != nil {
			log.Warn("mDNS advertise failed", "error", err)
		} else {
			defer server.Shutdown()
		}
		ip, err := share.OutgoingIP()
		if err != nil {
			ip = "127.0.0.1"
		}
		status = fmt.Sprintf("Sharing at ws://%s:%d/view", ip, *port)
		log.Info("live share enabled", "addr", status)
	}

	ctrl := board.NewController(board.Options{
		OnChange: func(d ink.Drawing) {
			log.Debug("drawing changed", "strokes", len(d))
			if hub != nil {
				hub.Publish(d)
			}
		},
	})

	ui.RunApp(ui.NewSketchWidget(ctrl), status)
	if hub != nil {
		hub.Close()
	}
}

func setupLogger(levelName string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelName) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return log
}
