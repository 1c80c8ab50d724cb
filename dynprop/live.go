package dynprop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/delaneyj/propcore/property"
	"github.com/fsnotify/fsnotify"
)

// Live is an Instance backed by a YAML file that can be reloaded while the
// program runs. Values set through Live survive reloads, and bindings that
// read through Live re-evaluate after each one.
type Live struct {
	sys       *property.System
	path      string
	instance  *Instance
	overrides map[string]Value
	// bumped on every successful reload
	generation *property.Property[int]
}

func Load(sys *property.System, path string) (*Live, error) {
	l := &Live{
		sys:        sys,
		path:       path,
		overrides:  map[string]Value{},
		generation: property.NewNamed(sys, 0, filepath.Base(path)),
	}
	in, err := l.decode()
	if err != nil {
		l.generation.Drop()
		return nil, err
	}
	l.instance = in
	return l, nil
}

func (l *Live) decode() (*Instance, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	in, err := Decode(l.sys, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return in, nil
}

func (l *Live) Path() string {
	return l.path
}

// Generation counts successful reloads.
func (l *Live) Generation() int {
	return l.generation.Get()
}

// Instance returns the current instance. It is replaced by Reload.
func (l *Live) Instance() *Instance {
	l.generation.Get()
	return l.instance
}

func (l *Live) Names() []string {
	return l.Instance().Names()
}

func (l *Live) Get(name string) (Value, error) {
	return l.Instance().Get(name)
}

// Set writes v and keeps it across reloads.
func (l *Live) Set(name string, v Value) error {
	if err := l.instance.Set(name, v); err != nil {
		return err
	}
	l.overrides[name] = v
	return nil
}

// Reload reads the file again. On error the current instance stays in place.
// Overrides the new file cannot take are forgotten.
func (l *Live) Reload() error {
	in, err := l.decode()
	if err != nil {
		return err
	}
	for name, v := range l.overrides {
		if err := in.setNow(name, v); err != nil {
			delete(l.overrides, name)
		}
	}
	old := l.instance
	l.instance = in
	old.Drop()
	l.generation.Set(l.generation.GetUntracked() + 1)
	l.sys.Logger().Info("reloaded", "path", l.path, "properties", len(in.cells))
	return nil
}

// Watch reloads whenever the file changes until ctx is done, calling
// reloaded after every attempt. It blocks, and runs Reload on the calling
// goroutine so the System is never touched from elsewhere.
func (l *Live) Watch(ctx context.Context, reloaded func(err error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace the file, so watch the directory
	abs, err := filepath.Abs(l.path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			err := l.Reload()
			if reloaded != nil {
				reloaded(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.sys.Logger().Warn("watching", "path", l.path, "error", err)
		}
	}
}
