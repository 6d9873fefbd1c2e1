package renderer

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/urosevicvuk/gameGL/internal/logging"
)

// ShaderWatcher watches the shader directory and posts a dirty flag when
// a source file changes. GL work stays on the render thread: the frame
// loop polls Dirty and calls Renderer.ReloadShaders itself.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	dirty   chan struct{}
	done    chan struct{}
}

// NewShaderWatcher starts watching dir for shader writes.
func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	sw := &ShaderWatcher{
		watcher: w,
		dirty:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go sw.run()
	logging.Infof("Watching %s for shader changes", dir)
	return sw, nil
}

func (sw *ShaderWatcher) run() {
	for {
		select {
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			ext := strings.ToLower(filepath.Ext(ev.Name))
			if ext != ".vert" && ext != ".frag" {
				continue
			}
			select {
			case sw.dirty <- struct{}{}:
			default:
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logging.Warnf("Shader watcher error: %v", err)
		case <-sw.done:
			return
		}
	}
}

// Dirty reports whether a shader changed since the last call, consuming
// the flag.
func (sw *ShaderWatcher) Dirty() bool {
	select {
	case <-sw.dirty:
		return true
	default:
		return false
	}
}

// Close stops the watcher.
func (sw *ShaderWatcher) Close() {
	close(sw.done)
	sw.watcher.Close()
}
