package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, renderer.NewDefaultLogger()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the command line interface. Render progress goes to
// logger, the ASCII preview to stdout.
func newRootCmd(stdout io.Writer, logger core.Logger) *cobra.Command {
	v := config.New()
	defaults := config.DefaultConfig()
	var configFile string

	cmd := &cobra.Command{
		Use:   "spheres [width height]",
		Short: "Render a ring of spheres to an image",
		Long: `Render a fixed scene of seven flat-colored spheres by casting one ray per
pixel and keeping the nearest intersection.

The image is written to --output (PNG, BMP or TIFF by extension). Images
smaller than 100x100 are also printed to the terminal as ASCII art.

Width and height default to 512x512 unless both are given. Settings can
also come from a config file (--config) or SPHERES_* environment variables.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			cfg.Width, cfg.Height, err = parseDimensions(args, cfg.Width, cfg.Height)
			if err != nil {
				return err
			}
			// Checked after the positional size is applied so it can replace
			// a bad configured one.
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			return run(cmd.Context(), cfg, stdout, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	flags.StringP("output", "o", defaults.Output, "Output image path (.png, .bmp, .tif)")
	flags.Int("workers", defaults.Workers, "Number of parallel workers (0 = use CPU count)")
	flags.Int("tile-size", defaults.TileSize, "Tile edge length in pixels")
	flags.Bool("preview", defaults.Preview, "Print an ASCII preview for images under 100x100")

	for key, flag := range map[string]string{
		config.KeyOutput:   "output",
		config.KeyWorkers:  "workers",
		config.KeyTileSize: "tile-size",
		config.KeyPreview:  "preview",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	cmd.SetOut(stdout)
	return cmd
}

// parseDimensions reads "width height" from the positional arguments. With
// fewer than two arguments the defaults are used; extra arguments are ignored.
func parseDimensions(args []string, defaultWidth, defaultHeight int) (int, int, error) {
	if len(args) < 2 {
		return defaultWidth, defaultHeight, nil
	}

	width, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width %q: %w", args[0], err)
	}
	height, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height %q: %w", args[1], err)
	}

	return width, height, nil
}

// run renders the default scene, saves it and prints the preview. A failed
// save is logged and does not stop the preview.
func run(ctx context.Context, cfg config.Config, stdout io.Writer, logger core.Logger) error {
	selectedScene, err := scene.NewDefaultScene(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, cfg.Width, cfg.Height, renderer.RenderConfig{
		TileSize:   cfg.TileSize,
		NumWorkers: cfg.Workers,
	}, logger)

	fb, _, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := output.Save(cfg.Output, fb.ToRGBA()); err != nil {
		logger.Printf("Couldn't save file: %v\n", err)
	} else {
		logger.Printf("Render saved as %s\n", cfg.Output)
	}

	if !cfg.Preview {
		return nil
	}
	if !output.CanPreview(cfg.Width, cfg.Height) {
		_, err := fmt.Fprintf(stdout, "Dimensions > %dx%d, not printing to terminal\n", output.PreviewLimit, output.PreviewLimit)
		return err
	}
	return output.WriteASCII(stdout, fb)
}
