package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/propcore/easing"
	"github.com/delaneyj/propcore/property"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func runAnimate(ctx context.Context, cmd *cli.Command) error {
	curve, err := easing.Parse(cmd.String(easingKey))
	if err != nil {
		return err
	}
	anim := property.Animation{
		Duration: time.Duration(cmd.Uint(durationKey)) * time.Millisecond,
		Easing:   curve,
	}
	return animateFrames(os.Stdout, anim, max(int(cmd.Uint(framesKey)), 1))
}

// animateFrames animates a width from 0 to 100 and a color from black to
// white, with a binding on the width, and prints one row per frame.
func animateFrames(out io.Writer, anim property.Animation, frames int) error {
	sys := newSystem()
	width := property.NewNamed(sys, 0.0, "width")
	bar := property.NewNamed(sys, "", "bar")
	bar.SetBinding(func() string {
		return strings.Repeat("#", int(width.Get()/5))
	})
	color := property.NewNamed(sys, property.RGBA(0, 0, 0, 255), "color")

	property.SetAnimatedValue(width, 100, anim)
	property.SetAnimatedValueFunc(color, property.RGBA(255, 255, 255, 255), anim, property.Color.Interpolate)

	tbl := table.NewWriter()
	tbl.SetTitle(fmt.Sprintf("%s over %s", anim.Easing, anim.Duration))
	tbl.SetOutputMirror(out)
	tbl.AppendHeader(table.Row{"tick", "width", "color", "bar"})

	for i := 0; i <= frames; i++ {
		sys.UpdateAnimations(property.InstantOf(anim.Duration * time.Duration(i) / time.Duration(frames)))
		c := color.Get()
		tbl.AppendRow(table.Row{
			sys.CurrentTick(),
			fmt.Sprintf("%.1f", width.Get()),
			fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			bar.Get(),
		})
	}
	tbl.Render()

	if width.HasBinding() || sys.HasActiveAnimations() {
		return fmt.Errorf("animation did not finish after %d frames", frames)
	}
	return nil
}
