package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/zam-dot/scrollkit/internal/clipboard"
	"github.com/zam-dot/scrollkit/internal/codegen"
	"github.com/zam-dot/scrollkit/internal/state"
	"github.com/zam-dot/scrollkit/internal/storage"
)

func main() {
	config, err := ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal("Error: ", err)
	}

	logger, err := setupLogging(config.LogPath(), config.Debug)
	if err != nil {
		log.Printf("file logging disabled: %v", err)
		logger = zap.NewNop()
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(config, logger, os.Stdout); err != nil {
		logger.Error("scrollkit exited with error", zap.Error(err))
		log.Fatal("Error: ", err)
	}
}

// run wires the store to its subscribers and starts the selected mode.
func run(config Config, logger *zap.Logger, stdout io.Writer) error {
	adapter := storage.NewAdapter(storage.NewFileKV(config.StoragePath()), logger)
	store := state.Boot(adapter)
	isDark := resolveDark(config.Theme)
	logger.Info("starting",
		zap.String("data_dir", config.DataDir),
		zap.Bool("dark", isDark),
	)

	// Print mode has no side effects beyond reading storage.
	if config.Export != "" {
		f, err := codegen.ParseFormat(config.Export)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, codegen.Render(f, store.Config()))
		return err
	}

	sink, err := newPreviewSink(config.PreviewPath(), isDark, logger)
	if err != nil {
		return err
	}
	store.Subscribe(sink.Apply)
	store.Subscribe(adapter.Save)

	if config.Preview {
		store.Notify()
		fmt.Fprintln(stdout, "Preview written to", config.PreviewPath())
		return openInBrowser(config.PreviewPath())
	}

	// The browser helper prints to stdout, which would corrupt the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	m := initialModel(store, clipboard.Default(logger), logger, config, isDark)
	store.Subscribe(m.onConfigChange)
	store.Notify()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
