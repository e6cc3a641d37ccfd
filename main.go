package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/niagarahome/launcher/internal/catalog"
	"github.com/niagarahome/launcher/internal/platform"
	"github.com/niagarahome/launcher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.niagarahome.launcher"
	AppName = "Niagara Launcher"

	WindowWidth  = 420
	WindowHeight = 780
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLauncherTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	source, closeSource := openCatalog()
	defer closeSource()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := ui.NewRootUI(myWindow, myApp, source)
	defer root.Close()
	root.StartClock(ctx)

	myWindow.ShowAndRun()
}

// openCatalog opens the SQLite catalog, seeding it on first start. It falls
// back to the in-memory demo catalog when the database is unavailable.
func openCatalog() (catalog.Source, func()) {
	path, err := platform.CatalogPath()
	if err != nil {
		log.Printf("Failed to resolve catalog path: %v", err)
		return catalog.NewMemorySource(catalog.DemoApps()), func() {}
	}

	store, err := catalog.Open(path)
	if err != nil {
		log.Printf("Failed to open catalog: %v", err)
		return catalog.NewMemorySource(catalog.DemoApps()), func() {}
	}

	n, err := store.Seed(context.Background(), catalog.DemoApps())
	if err != nil {
		log.Printf("Failed to seed catalog: %v", err)
	} else if n > 0 {
		log.Printf("Seeded catalog with %d apps", n)
	}

	return store, func() {
		if err := store.Close(); err != nil {
			log.Printf("Failed to close catalog: %v", err)
		}
	}
}
