package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"aicount/internal/core/controller"
	"aicount/internal/core/counter"
	"aicount/internal/core/model"
	"aicount/internal/input/hotkey"
	"aicount/internal/platform"
	"aicount/internal/storage"
	"aicount/internal/ui/overlay"
	"aicount/internal/ui/tray"
	"aicount/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "AIcount"

type options struct {
	configPath string
	logLevel   slog.Level
}

func parseLogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid -log-level %q (expected debug|info|warning|error)", value)
	}
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	opts := options{}
	flags := flag.NewFlagSet("aicount", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var logLevelRaw string
	flags.StringVar(&opts.configPath, "config", "config.ini", "Path to the INI settings file.")
	flags.StringVar(&logLevelRaw, "log-level", "info", "Log verbosity. Allowed: debug, info, warning, error.")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	level, err := parseLogLevel(logLevelRaw)
	if err != nil {
		return opts, err
	}
	opts.logLevel = level
	return opts, nil
}

func parseHotkeys(countRaw, modeRaw string) (hotkey.Chord, hotkey.Chord, error) {
	countChord, err := hotkey.ParseChord(countRaw)
	if err != nil {
		return hotkey.Chord{}, hotkey.Chord{}, fmt.Errorf("count_hotkey: %w", err)
	}
	modeChord, err := hotkey.ParseChord(modeRaw)
	if err != nil {
		return hotkey.Chord{}, hotkey.Chord{}, fmt.Errorf("change_hotkey: %w", err)
	}
	if countChord == modeChord {
		return hotkey.Chord{}, hotkey.Chord{}, fmt.Errorf("change_hotkey must be different from count_hotkey (%s)", countChord)
	}
	return countChord, modeChord, nil
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.logLevel}))

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Info("single instance", "err", err)
		return 0
	}
	defer func() {
		_ = guard.Release()
	}()

	configPath := storage.ResolveConfigPath(opts.configPath)
	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		logger.Error("load settings", "path", configPath, "err", err)
		return 1
	}
	countChord, modeChord, err := parseHotkeys(settings.CountHotkey, settings.ChangeHotkey)
	if err != nil {
		logger.Error("parse hotkeys", "path", configPath, "err", err)
		return 1
	}

	if !settings.WindowPositionSet {
		position, ok, err := storage.LoadWindowPosition(appName)
		if err != nil {
			logger.Warn("load window position", "err", err)
		} else if ok {
			settings.WindowX = int(position.X)
			settings.WindowY = int(position.Y)
		}
	}

	count, err := counter.New(settings.CounterConfig())
	if err != nil {
		logger.Error("create counter", "err", err)
		return 1
	}
	defer count.Close()

	fyneApp := app.NewWithID("com.aicount.app")
	fyneApp.SetIcon(resources.AppIcon())

	layout := model.DefaultLayout()
	style := settings.StyleConfig()
	ctrl := controller.New(count, style, layout, overlay.TextMeasurer)

	overlayWindow := overlay.New(fyneApp, overlay.Config{
		Title:    appName,
		Layout:   layout,
		Position: style.WindowPosition,
	}, logger)
	overlayWindow.SetOnExit(fyneApp.Quit)
	overlayWindow.SetOnMoved(func(position model.Point) {
		if err := storage.SaveWindowPosition(appName, position); err != nil {
			logger.Warn("save window position", "err", err)
		}
	})
	overlayWindow.SetFrame(ctrl.BuildFrame())

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(resources.AppIcon())
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnSwitchMode: ctrl.OnModeHotkey,
			OnReset:      ctrl.OnReset,
			OnQuit:       fyneApp.Quit,
		})
		trayManager.SetStatus(ctrl.Status())
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	listener := hotkey.New(logger)
	if err := listener.Register(countChord, ctrl.OnCountHotkey); err != nil {
		logger.Error("register count hotkey", "chord", countChord.String(), "err", err)
		return 1
	}
	if err := listener.Register(modeChord, ctrl.OnModeHotkey); err != nil {
		logger.Error("register mode hotkey", "chord", modeChord.String(), "err", err)
		return 1
	}
	if err := listener.Start(); err != nil {
		logger.Error("start hotkey listener", "err", err)
		return 1
	}
	defer listener.Stop()

	logger.Info("Count hotkey", "chord", countChord.String())
	logger.Info("Mode hotkey", "chord", modeChord.String())
	logger.Info("Limits", "primary", settings.ResetNumber, "secondary", settings.ResetNumber2)

	// Each event triggers a repaint from the current state, not from the
	// event payload, so a dropped event cannot leave a stale frame.
	events := ctrl.Subscribe(8)
	go func() {
		for event := range events {
			logger.Debug("state changed", "reason", event.Reason, "count", event.Snapshot.Count, "limit", event.Snapshot.ActiveLimit)
			fyne.Do(func() {
				overlayWindow.SetFrame(ctrl.BuildFrame())
				if trayManager != nil {
					trayManager.SetStatus(ctrl.Status())
				}
			})
		}
	}()

	fyneApp.Lifecycle().SetOnStarted(overlayWindow.ApplyNative)
	overlayWindow.Show()
	fyneApp.Run()
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
