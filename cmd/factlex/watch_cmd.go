package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/factlang/factlex/lexer"
	"github.com/factlang/factlex/theme"
)

type watchCmd struct {
	File string `arg:"" type:"existingfile" help:"Source file."`
}

func (c *watchCmd) Run(log *zap.Logger, def *lexer.Definition) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	path, err := filepath.Abs(c.File)
	if err != nil {
		return err
	}
	th := theme.Default(lipgloss.NewRenderer(os.Stdout))
	doc := lexer.NewDocument(def, "")
	reload := func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		start, end := doc.SetText(string(data))
		lexed, err := doc.Relex(ctx)
		if err != nil {
			return err
		}
		log.Info("Relexed", zap.String("file", c.File), zap.Int("changedFrom", start),
			zap.Int("changedTo", end), zap.Int("lexed", lexed), zap.Int("lines", doc.Lines()))
		fmt.Println(th.Render(doc))
		return nil
	}
	if err := reload(); err != nil {
		return err
	}
	return watchFile(ctx, log, path, reload)
}

// watchFile calls reload whenever path is written or recreated, until ctx is done.
func watchFile(ctx context.Context, log *zap.Logger, path string, reload func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Editors often replace files rather than write them, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := reload(); err != nil && ctx.Err() == nil {
				log.Warn("Reload failed", zap.String("file", path), zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watch error", zap.Error(err))
		}
	}
}
