// Package main is the entry point for the jigsaw solver.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/jigsaw/internal/grid"
	"github.com/samdwyer/jigsaw/internal/scan"
	"github.com/samdwyer/jigsaw/internal/telemetry"
	"github.com/samdwyer/jigsaw/internal/ui"
)

func main() {
	// Load .env for local development. Not fatal - env vars might be
	// set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Solver will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	view := flag.Bool("view", false, "show the assembled image in a terminal viewer")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: jigsaw [-view] <input-file>")
		os.Exit(2)
	}

	if err := run(ctx, flag.Arg(0), *view); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(ctx context.Context, path string, view bool) error {
	tracer := telemetry.Tracer("cli")
	ctx, span := tracer.Start(ctx, "jigsaw.solve",
		trace.WithAttributes(attribute.String("run.id", uuid.NewString())))
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tiles, err := scan.Tiles(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	g, err := grid.Assemble(ctx, tiles)
	if err != nil {
		return fmt.Errorf("assembling grid: %w", err)
	}
	fmt.Printf("corner product: %d\n", g.CornerProduct())

	merged := g.MergeTiles()
	monsters := merged.RemoveMonsters()
	fmt.Printf("monsters: %d\n", monsters)
	fmt.Printf("roughness: %d\n", merged.Roughness())

	span.SetAttributes(
		attribute.Int("solve.tiles", len(tiles)),
		attribute.Int("solve.monsters", monsters),
		attribute.Int("solve.roughness", merged.Roughness()),
	)

	if view {
		screen, err := ui.NewScreen()
		if err != nil {
			return fmt.Errorf("opening terminal viewer: %w", err)
		}
		defer screen.Close()
		ui.NewViewer(screen, merged, monsters).Run()
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom
// env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_JIGSAW_API_KEY")
	dataset := os.Getenv("HONEYCOMB_JIGSAW_DATASET")
	if dataset == "" {
		dataset = "jigsaw"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
