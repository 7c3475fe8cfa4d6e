package cmd

import (
	"errors"
	"fmt"

	"liblog/internal/config"
	"liblog/pkg/log"
	"liblog/pkg/logging"
	"liblog/pkg/properties"
	"liblog/pkg/transport"
)

// setupFromConfig wires the process-wide dispatcher from the CLI config:
// transport backend, channel paths, and the optional properties file backing
// the loggability policy. Called once per invocation before the first write.
func setupFromConfig() error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	var tr transport.Transport
	switch cfg.Transport {
	case config.TransportJournal:
		tr = transport.NewJournal()
	case config.TransportFake:
		tr = transport.NewFake()
	default:
		tr = transport.NewDevice()
	}

	if err := log.Configure(tr, cfg.Paths()); err != nil {
		if !errors.Is(err, log.ErrAlreadyInitialized) {
			return fmt.Errorf("configure dispatcher: %w", err)
		}
		// The dispatcher resolved earlier in this process; keep it.
		logging.Debug("Setup", "dispatcher already initialized, config not reapplied")
	}

	if cfg.PropertiesFile != "" {
		store, err := properties.NewFileStore(cfg.PropertiesFile)
		if err != nil {
			return err
		}
		// One-shot invocation: a snapshot is enough, no watcher needed.
		log.SetPropertyStore(store)
		logging.Debug("Setup", "loaded %d properties from %s", store.Len(), store.Path())
	}

	logging.Debug("Setup", "transport %s ready", cfg.Transport)
	return nil
}
