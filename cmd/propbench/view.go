package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/delaneyj/propcore/dynprop"
	"github.com/delaneyj/propcore/property"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func runView(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String(fileKey)
	if path == "" {
		return errors.New("--file is required")
	}
	l, err := dynprop.Load(newSystem(), path)
	if err != nil {
		return err
	}

	v := newViewer(l, os.Stdout)
	v.render()
	if !cmd.Bool(watchKey) {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	log.Printf("watching %s", path)
	err = l.Watch(ctx, func(err error) {
		if err != nil {
			log.Printf("reload failed: %v", err)
			return
		}
		v.render()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// viewer prints the properties of a live instance, redrawing only after
// something it printed has changed.
type viewer struct {
	live    *dynprop.Live
	out     io.Writer
	tracker *property.Tracker
	renders int
}

func newViewer(l *dynprop.Live, out io.Writer) *viewer {
	return &viewer{
		live:    l,
		out:     out,
		tracker: property.NewTracker(l.Instance().System()),
	}
}

func (v *viewer) render() bool {
	return v.tracker.EvaluateIfDirty(func() {
		v.renders++
		tbl := table.NewWriter()
		tbl.SetTitle(v.live.Path())
		tbl.SetOutputMirror(v.out)
		tbl.AppendHeader(table.Row{"property", "kind", "value"})
		in := v.live.Instance()
		for _, name := range in.Names() {
			val := in.MustGet(name)
			tbl.AppendRow(table.Row{name, val.Kind(), val})
		}
		tbl.Render()
	})
}
