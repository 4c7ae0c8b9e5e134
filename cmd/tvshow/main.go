// Command tvshow renders a local HTML file and displays it in a window.
package main

import (
	"fmt"
	"math"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"tinyview/pkg/config"
	"tinyview/pkg/html"
	"tinyview/pkg/layout"
	"tinyview/pkg/render"
)

func main() {
	a := app.New()
	w := a.NewWindow("tinyview")
	w.Resize(fyne.NewSize(840, 700))

	cfg := config.Defaults()

	// Blank initial canvas
	renderer := render.NewRenderer(cfg.ViewportWidth, cfg.MinHeight, cfg)
	img := canvas.NewImageFromImage(renderer.Image())
	img.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter an HTML file path and press Enter")

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("page.html")
	pathEntry.OnSubmitted = func(path string) {
		status.SetText("Rendering " + path + "...")
		go func() {
			rendered, err := renderFile(path, cfg)
			if err != nil {
				status.SetText("Error: " + err.Error())
				return
			}
			img.Image = rendered.Image()
			img.Refresh()
			status.SetText(path)
			w.SetTitle(fmt.Sprintf("tinyview - %s", path))
		}()
	}

	topBar := container.NewBorder(nil, nil, nil, nil, pathEntry)
	scroll := container.NewScroll(img)
	content := container.NewBorder(topBar, status, nil, nil, scroll)
	w.SetContent(content)

	// Keep focus on the entry so typing goes somewhere useful
	w.Canvas().Focus(pathEntry)

	// Render an initial file if given on the command line
	if len(os.Args) > 1 {
		pathEntry.SetText(os.Args[1])
		pathEntry.OnSubmitted(os.Args[1])
	}

	w.ShowAndRun()
}

func renderFile(path string, cfg config.Config) (*render.Renderer, error) {
	htmlContent, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(string(htmlContent))
	if err != nil {
		return nil, err
	}

	engine := layout.NewEngine(cfg)
	root := engine.ComputeLayout(doc)

	canvasHeight := int(math.Ceil(root.Box.Height)) + int(cfg.Margin)*2
	if canvasHeight < cfg.MinHeight {
		canvasHeight = cfg.MinHeight
	}

	renderer := render.NewRenderer(cfg.ViewportWidth, canvasHeight, cfg)
	renderer.Render(root)
	return renderer, nil
}
