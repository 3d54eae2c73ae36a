package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pastelines/internal/config"
	"pastelines/internal/eventbus"
	"pastelines/internal/paste"
	"pastelines/internal/session"
	"pastelines/internal/ui"
)

func main() {
	// Parse command line arguments
	var rawLink, configPath string
	flag.StringVar(&rawLink, "link", "", "Shareable link or lines value to restore")
	flag.StringVar(&rawLink, "l", "", "Shareable link or lines value to restore (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-link URL] file... (use - for stdin)\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Set up logging
	logFile, err := os.OpenFile("pastelines.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg := loadConfig(configPath)

	p, err := paste.Load(flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Loaded paste %s with %d files", p.ID, len(p.Files))

	// Create event bus
	bus := eventbus.New()

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventError, forwardEvent)
	bus.Subscribe(eventbus.EventLinkRestored, forwardEvent)

	sess := session.New(cfg, bus, nil)
	defer sess.Close()

	uiModel := ui.NewModel(cfg, bus, sess)
	if err := uiModel.Open(p, rawLink); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	prog := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(prog)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			prog.Send(ui.EventMsg{Event: event})
		}
	}()

	if os.Getenv("PASTELINES_E2E_TEST") != "" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	log.Printf("Starting UI...")
	if _, err := prog.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
	close(eventChan)

	// The link is the product of the session
	fmt.Println(uiModel.Link())
}

// loadConfig prefers an explicit path, then ./.pastelines.toml, then the
// user config dir. Any failure falls back to defaults.
func loadConfig(path string) *config.Config {
	if path == "" {
		if _, err := os.Stat(config.FileName); err == nil {
			path = config.FileName
		}
	}

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.NewConfigServiceAt(path).Load()
	} else {
		cfg, err = config.NewConfigService().Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
