package viewer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch discards a container's view when its file changes, appears or goes
// away, so the next request rebuilds against current contents. Close the
// returned watcher on shutdown.
func (s *Server) Watch() (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.Config.Containers); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				s.invalidate(filepath.Base(event.Name))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
	return watcher, nil
}
