package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/niagarahome/launcher/internal/catalog"
	"github.com/niagarahome/launcher/internal/config"
	"github.com/niagarahome/launcher/internal/termhost"
)

func main() {
	profilePath := flag.String("profile", "", "TOML tunables profile")
	catalogPath := flag.String("catalog", "", "SQLite catalog; the demo catalog is used when empty")
	logPath := flag.String("log", "", "log file; the terminal is in use so logs are discarded when empty")
	flag.Parse()

	if err := run(*profilePath, *catalogPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "niagara-term: %v\n", err)
		os.Exit(1)
	}
}

func run(profilePath, catalogPath, logPath string) error {
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	profile := config.DefaultProfile()
	if profilePath != "" {
		p, err := config.LoadProfile(profilePath)
		if err != nil {
			return err
		}
		profile = p
	}

	var source catalog.Source = catalog.NewMemorySource(catalog.DemoApps())
	if catalogPath != "" {
		store, err := catalog.Open(catalogPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.Seed(context.Background(), catalog.DemoApps()); err != nil {
			return err
		}
		source = store
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := termhost.New(screen, source, profile.Tunables())
	defer host.Close()
	log.Printf("Terminal host started")
	return host.Run(ctx)
}
