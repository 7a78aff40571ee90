package main

import (
	"context"
	"fmt"

	"polishlang/internal/models"
	"polishlang/internal/services"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct
type App struct {
	ctx      context.Context
	services *services.Services
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services) *App {
	return &App{services: svc}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	runtime.LogInfo(a.ctx, fmt.Sprintf("loaded %d providers", len(a.services.Catalog.ListProviders())))
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if err := a.services.Close(); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to close settings database: %v", err))
	} else {
		runtime.LogInfo(ctx, "settings store closed")
	}
}

// Providers returns the provider catalog for the settings form.
func (a *App) Providers() []models.ProviderConfig {
	return a.services.Catalog.ListProviders()
}

// HideWindow hides the settings window; the app keeps running in the tray.
func (a *App) HideWindow() {
	runtime.WindowHide(a.ctx)
}
