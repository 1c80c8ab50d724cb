package dynprop_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/delaneyj/propcore/dynprop"
	"github.com/delaneyj/propcore/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestLiveReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "button.yaml")
	writeFile(t, path, "properties:\n  width: 10\n  label: a\n")

	sys := property.NewSystem()
	l, err := dynprop.Load(sys, path)
	require.NoError(t, err)

	// a binding outside the file that follows it
	double := property.New(sys, 0.0)
	double.SetBinding(func() float64 {
		v, err := l.Get("width")
		if err != nil {
			return -1
		}
		w, _ := v.Number()
		return w * 2
	})
	assert.Equal(t, 20.0, double.Get())

	require.NoError(t, l.Set("label", dynprop.String("override")))
	writeFile(t, path, "properties:\n  width: 30\n  label: b\n  extra: true\n")
	require.NoError(t, l.Reload())
	assert.Equal(t, 1, l.Generation())
	assert.Equal(t, 60.0, double.Get())
	assert.Equal(t, []string{"extra", "label", "width"}, l.Names())

	v, err := l.Get("label")
	require.NoError(t, err)
	assert.Equal(t, dynprop.String("override"), v)

	// a broken file keeps the previous instance
	writeFile(t, path, "properties: [")
	assert.Error(t, l.Reload())
	assert.Equal(t, 1, l.Generation())
	assert.Equal(t, 60.0, double.Get())

	// the override no longer fits
	writeFile(t, path, "properties:\n  width: 1\n  label: 5\n")
	require.NoError(t, l.Reload())
	v, err = l.Get("label")
	require.NoError(t, err)
	assert.Equal(t, dynprop.Number(5), v)
	assert.Equal(t, 2.0, double.Get())
}

func TestLiveReloadFailureReleasesPartialInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	writeFile(t, path, "properties:\n  a: 1\n  b: 2\n  c: 3\n  d: 4\n")

	sys := property.NewSystem()
	l, err := dynprop.Load(sys, path)
	require.NoError(t, err)
	base := sys.Stats()

	writeFile(t, path, "properties:\n  a: 1\n  b: 2\n  c: 3\n  d: 4\nlinks:\n  - [a, b]\n  - [c, d]\n  - [a, missing]\n")
	for range 10 {
		assert.ErrorIs(t, l.Reload(), dynprop.ErrUnknownProperty)
	}
	assert.Equal(t, base, sys.Stats())
	assert.Equal(t, 0, l.Generation())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := dynprop.Load(property.NewSystem(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLiveWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.yaml")
	writeFile(t, path, "properties:\n  opacity: 0.5\n")

	l, err := dynprop.Load(property.NewSystem(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	go func() {
		// give the watcher time to start
		time.Sleep(200 * time.Millisecond)
		os.WriteFile(path, []byte("properties:\n  opacity: 1\n"), 0644)
	}()

	// the write may be seen half done first
	err = l.Watch(ctx, func(err error) {
		if v, err := l.Get("opacity"); err == nil && v == dynprop.Number(1) {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Positive(t, l.Generation())

	v, err := l.Get("opacity")
	require.NoError(t, err)
	assert.Equal(t, dynprop.Number(1), v)
}
