// Command tinyview renders an HTML file to a PNG image.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"tinyview/pkg/config"
	"tinyview/pkg/html"
	"tinyview/pkg/layout"
	"tinyview/pkg/render"
	"tinyview/pkg/text"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "tinyview",
		Usage:   "minimal HTML renderer that outputs PNG",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "render an HTML file to a PNG image",
				ArgsUsage: "<input.html>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "output PNG file path",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "width",
						Usage: "viewport width in pixels (overrides config)",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML config file with layout constants",
					},
					&cli.StringFlag{
						Name:  "metrics",
						Value: "estimate",
						Usage: "text width strategy: estimate or font",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "enable debug logging",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "suppress all log output",
					},
				},
				Action: runRender,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runRender(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("missing input file", 1)
	}
	inputFile := c.Args().Get(0)
	outputFile := c.String("output")

	log := config.NewLogger(c.Bool("verbose"), c.Bool("quiet"))
	defer log.Sync()

	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		log.Debug("loaded config", zap.String("path", path))
	}
	if w := c.Int("width"); w > 0 {
		cfg.ViewportWidth = w
	}

	htmlContent, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	start := time.Now()
	doc, err := html.Parse(string(htmlContent))
	if err != nil {
		return fmt.Errorf("parse HTML: %w", err)
	}
	log.Debug("parsed document",
		zap.Int("nodes", countNodes(doc.Root)),
		zap.Duration("elapsed", time.Since(start)))

	engine := layout.NewEngine(cfg)
	switch c.String("metrics") {
	case "estimate":
		// engine default
	case "font":
		engine.SetMeasurer(text.NewFontMeasurer(cfg.CharWidth))
	default:
		return fmt.Errorf("unknown metrics strategy %q", c.String("metrics"))
	}

	start = time.Now()
	root := engine.ComputeLayout(doc)
	log.Debug("computed layout",
		zap.Float64("height", root.Box.Height),
		zap.Duration("elapsed", time.Since(start)))

	// Canvas height: document height plus breathing room, at least the
	// configured minimum.
	canvasHeight := int(math.Ceil(root.Box.Height)) + int(cfg.Margin)*2
	if canvasHeight < cfg.MinHeight {
		canvasHeight = cfg.MinHeight
	}

	start = time.Now()
	renderer := render.NewRenderer(cfg.ViewportWidth, canvasHeight, cfg)
	renderer.Render(root)
	if err := renderer.SavePNG(outputFile); err != nil {
		return fmt.Errorf("save PNG: %w", err)
	}
	log.Debug("rendered", zap.Duration("elapsed", time.Since(start)))

	log.Info("rendered HTML",
		zap.String("input", inputFile),
		zap.String("output", outputFile),
		zap.Int("width", cfg.ViewportWidth),
		zap.Int("height", canvasHeight))
	return nil
}

func countNodes(n *html.Node) int {
	count := 1
	for _, child := range n.Children {
		count += countNodes(child)
	}
	return count
}
