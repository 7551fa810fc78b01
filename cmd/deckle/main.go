package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"deckle/internal/config"
	"deckle/internal/content"
	"deckle/internal/eventbus"
	"deckle/internal/ui"
)

func main() {
	pagerMode := flag.Bool("pager", false, "print the document through a pager instead of the interactive viewer")
	watchFlag := flag.Bool("watch", true, "reload the document when it changes on disk")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <document.md>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	docPath := flag.Arg(0)

	// Set up logging
	logFile, err := os.OpenFile("deckle.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Parse the document before the terminal is taken over, so parse
	// errors land on stderr instead of a corrupted screen
	doc, err := content.Load(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", docPath, err)
		os.Exit(1)
	}
	bus.Publish(eventbus.DocumentLoadedEvent{Path: docPath, Document: doc})

	if *pagerMode {
		if err := ui.ShowInPager(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error running pager: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, doc, docPath)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventDocumentChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start the document watcher
	var watcher *content.Watcher
	if *watchFlag && cfg.Watch.Enabled {
		w, err := content.NewWatcher(bus, docPath)
		if err != nil {
			log.Printf("Error creating watcher: %v", err)
		} else if err := w.Start(ctx); err != nil {
			log.Printf("Error starting watcher: %v", err)
		} else {
			watcher = w
		}
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup. The watcher stops first so no debounced reload publishes
	// into the forwarding channel after the UI is gone; the channel itself
	// stays open until process exit.
	if watcher != nil {
		watcher.Stop()
	}
	cancel()

	// Persist UI preferences for the next session; the model writes them
	// back into cfg as they change
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Error saving config: %v", err)
	}
}
