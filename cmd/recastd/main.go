// Command recastd serves the conversion API over HTTP. Clients upload a
// PDF to /api/convert and download the produced DOCX from the job's
// download endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phuslu/log"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/recast/internal/webapi"
)

var (
	addrFlag    = flag.String("addr", ":8080", "listen address")
	workDirFlag = flag.String("work-dir", "", "scratch directory for uploads, defaults to the system temp dir")
	configFlag  = flag.String("config", "", "YAML config file; flags take precedence over its values")
	verboseFlag = flag.Bool("verbose", false, "enable debug logging")
)

// fileConfig mirrors the flags in YAML form, plus the upload cap which
// has no flag.
type fileConfig struct {
	Addr        string `yaml:"addr"`
	WorkDir     string `yaml:"work_dir"`
	MaxUploadMB int64  `yaml:"max_upload_mb"`
	Verbose     bool   `yaml:"verbose"`
}

func main() {
	flag.Parse()

	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "recastd:", err)
		os.Exit(1)
	}

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger := log.Logger{
		Level:      level,
		TimeFormat: "15:04:05",
		Writer:     &log.ConsoleWriter{ColorOutput: true, EndWithMessage: true},
	}

	server := webapi.NewServer(webapi.Config{
		Logger:    logger,
		WorkDir:   cfg.WorkDir,
		MaxUpload: cfg.MaxUploadMB << 20,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("server stopped")
}

// resolveConfig loads the config file when one is named and applies any
// explicitly set flags on top of it.
func resolveConfig() (fileConfig, error) {
	cfg := fileConfig{MaxUploadMB: 100}
	if *configFlag != "" {
		data, err := os.ReadFile(*configFlag)
		if err != nil {
			return cfg, err
		}
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", *configFlag, err)
		}
		if file.Addr != "" {
			cfg.Addr = file.Addr
		}
		if file.WorkDir != "" {
			cfg.WorkDir = file.WorkDir
		}
		if file.MaxUploadMB > 0 {
			cfg.MaxUploadMB = file.MaxUploadMB
		}
		cfg.Verbose = file.Verbose
	}
	if cfg.Addr == "" {
		cfg.Addr = *addrFlag
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["addr"] {
		cfg.Addr = *addrFlag
	}
	if set["work-dir"] {
		cfg.WorkDir = *workDirFlag
	}
	if set["verbose"] {
		cfg.Verbose = *verboseFlag
	}
	return cfg, nil
}
