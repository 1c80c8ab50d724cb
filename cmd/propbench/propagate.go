package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/delaneyj/propcore/property"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func runPropagate(ctx context.Context, cmd *cli.Command) error {
	log.Printf("warming up")
	benchmarkPropagate(io.Discard, 1)
	benchmarkPropagate(os.Stdout, int(cmd.Uint(itersKey)))
	return nil
}

type propagateGraph struct {
	sys     *property.System
	src     *property.Property[int]
	leaves  []func() bool
	effects int
}

// newPropagateGraph builds w chains of h bindings on one source, each chain
// observed by a tracker that reads its end, the way a renderer would.
func newPropagateGraph(w, h int) *propagateGraph {
	g := &propagateGraph{sys: newSystem()}
	g.src = property.New(g.sys, 1)
	for range w {
		last := g.src
		for range h {
			prev := last
			last = property.New(g.sys, 0)
			last.SetBinding(func() int { return prev.Get() + 1 })
		}
		end := last
		leaf := property.NewTrackerWithChangeHandler(g.sys, func() { g.effects++ })
		render := func() { end.Get() }
		leaf.Evaluate(render)
		g.leaves = append(g.leaves, func() bool { return leaf.EvaluateIfDirty(render) })
	}
	return g
}

func (g *propagateGraph) write() {
	g.src.Set(g.src.GetUntracked() + 1)
	for _, rerender := range g.leaves {
		rerender()
	}
}

func benchmarkPropagate(out io.Writer, iters int) {
	tbl := table.NewWriter()
	tbl.SetTitle("propcore properties")
	tbl.SetOutputMirror(out)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			g := newPropagateGraph(w, h)
			for range iters {
				start := time.Now()
				g.write()
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}
	tbl.Render()
}
