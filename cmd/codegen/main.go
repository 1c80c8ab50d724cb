package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/propcore/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	outKey     = "out"
	packageKey = "package"
)

func main() {
	cmd := &cli.Command{
		Name:  "codegen",
		Usage: "Generate code for propcore",
		Commands: []*cli.Command{
			{
				Name:  "lerp",
				Usage: "Generate the numeric interpolation switch",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  outKey,
						Usage: "File to write",
						Value: "property/lerp_gen.go",
					},
					&cli.StringFlag{
						Name:  packageKey,
						Usage: "Package name of the generated file",
						Value: "property",
					},
				},
				Action: generateLerp,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generateLerp(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for lerp started")
	defer func() {
		log.Printf("Codegen for lerp finished in %v", time.Since(start))
	}()

	contents := templates.LerpGen(cmd.String(packageKey), templates.NumberTypes)
	src, err := format.Source([]byte(strings.TrimLeft(contents, "\n")))
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}

	out := cmd.String(outKey)
	if err := os.WriteFile(out, src, 0644); err != nil {
		return err
	}
	log.Printf("Wrote %d types to %s", len(templates.NumberTypes), out)
	return nil
}
