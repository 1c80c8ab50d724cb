package main

import (
	"context"
	"log"
	"os"
	"runtime/pprof"

	"github.com/delaneyj/propcore/property"
	"github.com/urfave/cli/v3"
)

const (
	cpuProfileKey   = "cpuprofile"
	systemConfigKey = "system-config"
	itersKey        = "iters"
	configKey       = "config"
	repeatsKey      = "repeats"
	easingKey       = "easing"
	durationKey     = "duration"
	framesKey       = "frames"
	fileKey         = "file"
	watchKey        = "watch"
)

func main() {
	cmd := &cli.Command{
		Name:  "propbench",
		Usage: "Benchmarks and demos for the propcore property engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
			&cli.StringFlag{
				Name:  systemConfigKey,
				Usage: "YAML file with slow_animations and debug, applied over the PROPCORE_* variables",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Time a write through width * height chains of bindings",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  itersKey,
						Usage: "Writes per graph size",
						Value: 100,
					},
				},
				Action: configured(profiled(runPropagate)),
			},
			{
				Name:  "graph",
				Usage: "Run the layered dependency graph suite",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  configKey,
						Usage: "YAML file with graph configs, the built in suite if empty",
					},
					&cli.UintFlag{
						Name:  repeatsKey,
						Usage: "Runs per config, the best one is reported",
						Value: 5,
					},
				},
				Action: configured(profiled(runGraphs)),
			},
			{
				Name:  "animate",
				Usage: "Print the frames of an animated property",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  easingKey,
						Usage: "Easing curve, a CSS keyword or cubic-bezier(...)",
						Value: "ease-in-out",
					},
					&cli.UintFlag{
						Name:  durationKey,
						Usage: "Animation duration in milliseconds",
						Value: 1000,
					},
					&cli.UintFlag{
						Name:  framesKey,
						Usage: "Number of frames to print",
						Value: 10,
					},
				},
				Action: configured(profiled(runAnimate)),
			},
			{
				Name:  "view",
				Usage: "Print the properties declared in a YAML file, reloading on change",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  fileKey,
						Usage: "Instance description to load",
					},
					&cli.BoolFlag{
						Name:  watchKey,
						Usage: "Keep running and reprint after every change",
					},
				},
				Action: configured(runView),
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// profiled runs action under the CPU profiler unless --cpuprofile is empty.
func profiled(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.String(cpuProfileKey)
		if path == "" {
			return action(ctx, cmd)
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
		return action(ctx, cmd)
	}
}

// systemConfig is what newSystem builds with; configured layers
// --system-config over it.
var systemConfig = property.ConfigFromEnv()

func configured(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if path := cmd.String(systemConfigKey); path != "" {
			cfg, err := property.LoadConfig(path, systemConfig)
			if err != nil {
				return err
			}
			systemConfig = cfg
		}
		return action(ctx, cmd)
	}
}

func newSystem() *property.System {
	return property.NewSystem(property.WithConfig(systemConfig))
}
