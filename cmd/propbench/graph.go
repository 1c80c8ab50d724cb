package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/propcore/property"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed graphs.yaml
var defaultGraphs []byte

type graphConfig struct {
	Name           string  `yaml:"name"`            // friendly name for the test, should be unique
	Width          int     `yaml:"width"`           // width of dependency graph to construct
	TotalLayers    int     `yaml:"total_layers"`    // depth of dependency graph to construct
	StaticFraction float64 `yaml:"static_fraction"` // fraction of nodes that always read all their sources
	NSources       int     `yaml:"n_sources"`       // construct a graph with number of sources in each node
	ReadFraction   float64 `yaml:"read_fraction"`   // fraction of [0, 1] elements in the last layer from which to read values in each test iteration
	Iterations     int64   `yaml:"iterations"`      // number of test iterations
}

func (cfg *graphConfig) title() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%dx%d %d sources", cfg.Width, cfg.TotalLayers, cfg.NSources))
	if cfg.StaticFraction < 1 {
		sb.WriteString(" dynamic")
	}
	if cfg.ReadFraction < 1 {
		sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*cfg.ReadFraction))
	}
	return sb.String()
}

func loadGraphConfigs(path string) ([]graphConfig, error) {
	data := defaultGraphs
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	var cfgs []graphConfig
	if err := yaml.Unmarshal(data, &cfgs); err != nil {
		return nil, fmt.Errorf("parsing graph configs: %w", err)
	}
	for _, cfg := range cfgs {
		if cfg.Width <= 0 || cfg.TotalLayers < 2 || cfg.NSources <= 0 {
			return nil, fmt.Errorf("graph config %q needs a positive width, n_sources and at least two layers", cfg.Name)
		}
	}
	return cfgs, nil
}

type graph struct {
	sys     *property.System
	sources []*property.Property[int]
	layers  [][]*property.Property[int]
	// evaluations of any binding
	counter int64
}

// newGraph builds totalLayers-1 rows of bindings on top of width sources. A
// static node reads all of its nSources inputs every time; a dynamic one skips
// one depending on the first input, so its read set changes between runs.
func newGraph(cfg *graphConfig) *graph {
	g := &graph{sys: newSystem()}
	g.sources = make([]*property.Property[int], cfg.Width)
	for i := range g.sources {
		g.sources[i] = property.New(g.sys, i)
	}

	random := rand.New(rand.NewSource(0))
	prevRow := g.sources
	for range cfg.TotalLayers - 1 {
		row := make([]*property.Property[int], len(prevRow))
		for myDex := range prevRow {
			mySources := make([]*property.Property[int], 0, cfg.NSources)
			for sourceDex := range cfg.NSources {
				mySources = append(mySources, prevRow[(myDex+sourceDex)%len(prevRow)])
			}

			p := property.New(g.sys, 0)
			if random.Float64() < cfg.StaticFraction {
				p.SetBinding(func() int {
					g.counter++
					sum := 0
					for _, source := range mySources {
						sum += source.Get()
					}
					return sum
				})
			} else {
				first := mySources[0]
				tail := mySources[1:]
				p.SetBinding(func() int {
					g.counter++
					sum := first.Get()
					shouldDrop := sum&0x1 > 0
					dropDex := 0
					if len(tail) > 0 {
						dropDex = sum % len(tail)
					}
					for i := range tail {
						if shouldDrop && i == dropDex {
							continue
						}
						sum += tail[i].Get()
					}
					return sum
				})
			}
			row[myDex] = p
		}
		g.layers = append(g.layers, row)
		prevRow = row
	}
	return g
}

// run writes one source per iteration and reads some or all of the leaves.
// It returns the sum of the leaves read.
func (g *graph) run(iterations int64, readFraction float64) int {
	random := rand.New(rand.NewSource(0))
	leaves := g.layers[len(g.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - readFraction)))
	readLeaves := removeElems(leaves, skipCount, random)

	for i := range int(iterations) {
		sourceDex := i % len(g.sources)
		g.sources[sourceDex].Set(i + sourceDex)
		for _, leaf := range readLeaves {
			leaf.Get()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Get()
	}
	return sum
}

func removeElems[T any](src []T, rmCount int, rand *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for range rmCount {
		rmDex := rand.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}

func runGraphs(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting graph benchmark, please wait...")
	defer log.Print("Finished graph benchmark")

	cfgs, err := loadGraphConfigs(cmd.String(configKey))
	if err != nil {
		return err
	}
	repeats := max(int(cmd.Uint(repeatsKey)), 1)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"size", "nSources", "read%", "static%",
		"nTimes", "test", "time", "sum", "evaluations",
		"updateRate", "title",
	})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.Name)

		var (
			best     = time.Duration(math.MaxInt64)
			bestSum  int
			bestEval int64
		)
		for i := range repeats + 1 {
			// a fresh graph per run, the first one is the warm up
			g := newGraph(&cfg)
			start := time.Now()
			sum := g.run(cfg.Iterations, cfg.ReadFraction)
			duration := time.Since(start)
			if i == 0 {
				continue
			}
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.Name, i, repeats, i*100/repeats)
			if duration < best {
				best, bestSum, bestEval = duration, sum, g.counter
			}
		}

		updateRate := float64(bestEval) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			fmt.Sprintf("%dx%d", cfg.Width, cfg.TotalLayers),
			fmt.Sprint(cfg.NSources),
			fmt.Sprint(cfg.ReadFraction),
			fmt.Sprint(cfg.StaticFraction),
			humanize.Comma(cfg.Iterations),
			cfg.Name,
			fmt.Sprint(best),
			humanize.Comma(int64(bestSum)),
			humanize.Comma(bestEval),
			humanize.Comma(int64(updateRate)),
			cfg.title(),
		})
	}
	table.Render()
	return nil
}
