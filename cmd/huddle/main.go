package main

import (
	"bytes"
	"log"

	"huddle/assets/sample"
	"huddle/pkg/config"
	"huddle/pkg/logging"
	"huddle/pkg/session"
	"huddle/pkg/ui"
)

func main() {
	cfgPath := config.ResolveConfigPath()
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config %q: %v", cfgPath, err)
	}

	logger := logging.NewConsole(logging.ParseLevel(cfg.LogLevel))

	sess := session.New(logger)
	if cfg.StartupCSV != "" {
		if err := sess.ImportFile(cfg.StartupCSV); err != nil {
			logger.Warn().Err(err).Str("path", cfg.StartupCSV).
				Msg("startup csv failed, falling back to bundled sample")
		}
	}
	if sess.Current() == nil {
		if err := sess.ImportReader(bytes.NewReader(sample.TeamsCSV()), "bundled sample"); err != nil {
			log.Fatalf("bundled sample dataset failed to load: %v", err)
		}
	}

	app := ui.NewHuddleApp(cfg, sess, logger)
	app.Run()
}
