package main

import (
	"embed"
	"log"

	"sageflow/internal/about"
	"sageflow/internal/app"
	"sageflow/internal/config"
	"sageflow/internal/infrastructure/logging"
	"sageflow/internal/version"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := cfg.Logger()

	application, err := app.NewApp(app.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	err = wails.Run(&options.App{
		Title:             cfg.Title,
		Width:             cfg.Width,
		Height:            cfg.Height,
		MinWidth:          cfg.MinWidth,
		MinHeight:         cfg.MinHeight,
		DisableResize:     false,
		Fullscreen:        false,
		Frameless:         false,
		StartHidden:       cfg.StartHidden,
		HideWindowOnClose: false,
		AlwaysOnTop:       cfg.AlwaysOnTop,
		BackgroundColour:  &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu:             nil,
		Logger:           logging.NewWailsLoggerAdapter(logger),
		LogLevel:         cfg.RuntimeLogLevel(),
		OnStartup:        application.Startup,
		OnDomReady:       application.DomReady,
		OnBeforeClose:    application.BeforeClose,
		OnShutdown:       application.Shutdown,
		WindowStartState: options.Normal,
		Bind: []interface{}{
			application,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			ZoomFactor:           1.0,
		},
		Mac: &mac.Options{
			TitleBar: mac.TitleBarDefault(),
			About: &mac.AboutInfo{
				Title:   cfg.ProductName,
				Message: about.Message(version.Get()),
			},
		},
	})

	if err != nil {
		log.Fatal(err)
	}
}
