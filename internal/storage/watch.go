package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports changes to the config file until ctx is cancelled, then
// closes the returned channel. The directory is watched rather than the
// file so editors that save by rename are still seen. Bursts of events are
// coalesced into a single pending notification.
func (s *Storage) Watch(ctx context.Context) (<-chan struct{}, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(s.ConfigDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", s.ConfigDir, err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != s.FileName {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger().Printf("config watcher: %v", err)
			}
		}
	}()

	return changes, nil
}
