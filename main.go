package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"polishlang/internal/config"
	"polishlang/internal/events"
	"polishlang/internal/services"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}
	logLevel, _ := config.ParseLogLevel(cfg.LogLevel)
	log := cfg.NewLogger()

	svc, err := services.NewServices(cfg, log)
	if err != nil {
		fmt.Println("Error creating services:", err)
		os.Exit(1)
	}

	app := NewApp(svc)

	bind := []interface{}{
		app,
		svc.Settings,
	}
	if svc.Keyring != nil {
		bind = append(bind, svc.Keyring)
	}

	err = wails.Run(&options.App{
		Title:         "Polish Language - Settings",
		Width:         500,
		Height:        600,
		DisableResize: true,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Polish Language",
		},
		Logger:           log,
		LogLevel:         logLevel,
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			app.startup(ctx)
			svc.Settings.Startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind:       bind,
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
