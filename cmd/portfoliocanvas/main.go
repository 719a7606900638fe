// Command portfoliocanvas opens the portfolio canvas in a desktop window.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/joho/godotenv"

	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
	"github.com/elektrokombinacija/portfolio-canvas/internal/content"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis"
)

func main() {
	_ = godotenv.Load() // .env is optional

	configPath := flag.String("config", os.Getenv("CANVAS_CONFIG"), "YAML config file (defaults built in)")
	contentPath := flag.String("content", os.Getenv("CANVAS_CONTENT"), "YAML content export (placeholders when empty)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *contentPath == "" {
		*contentPath = cfg.ContentPath
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Portfolio Canvas"),
			app.Size(unit.Dp(1400), unit.Dp(900)),
		)

		application := vis.NewApp(cfg, content.NewFileStore(*contentPath))
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
