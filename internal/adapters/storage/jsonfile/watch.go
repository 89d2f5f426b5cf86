package jsonfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cat-registry/internal/platform/logger"
)

// Watch recarga la colección cuando otro proceso (p.ej. catctl) escribe el archivo.
// Bloquea hasta que ctx se cancela. Se vigila el directorio y no el archivo
// porque algunos editores reemplazan el archivo en vez de escribirlo.
func (s *Store) Watch(ctx context.Context, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("jsonfile: watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("jsonfile: abs path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("jsonfile: watch %s: %w", filepath.Dir(abs), err)
	}

	log.Info("watching data file", map[string]any{"path": abs})

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				// archivo a medio escribir o JSON roto: se conserva lo que había
				log.Warn("data file reload failed", map[string]any{"path": abs, "error": err})
				continue
			}
			log.Debug("data file reloaded", map[string]any{"path": abs})

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("data file watcher error", map[string]any{"error": err})
		}
	}
}
