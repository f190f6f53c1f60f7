package main

import (
	"fmt"
	"io"
	"time"

	"articlesum/internal/config"
	"articlesum/internal/domain"
	"articlesum/internal/extract"
	"articlesum/internal/logging"
	"articlesum/internal/service"
	"articlesum/internal/stopwords"
	"articlesum/internal/store/memory"
	"articlesum/internal/store/sqlite"
	"articlesum/internal/summarizer"
)

// app holds the assembled components shared by every subcommand.
type app struct {
	cfg   *config.AppConfig
	log   *logging.Logger
	store domain.Store
	svc   *service.SummaryService
}

// newApp loads config and assembles components. A nil logOut logs to the
// console; the TUI passes io.Discard so only the log file (if any) is written.
func newApp(cfgPath string, logOut io.Writer) (*app, error) {
	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logCfg := logging.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}
	var logger *logging.Logger
	if logOut == nil {
		logger = logging.New(logCfg)
	} else {
		logger = logging.NewWriter(logCfg, logOut)
	}

	sum, err := newSummarizer(cfg.Summarizer)
	if err != nil {
		logger.Close()
		return nil, err
	}

	var st domain.Store
	switch cfg.Store.Type {
	case "memory":
		st = memory.NewStorage()
	case "sqlite":
		st, err = sqlite.Open(cfg.Store.Path)
		if err != nil {
			logger.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
	}
	logger.Debug("using %s store", cfg.Store.Type)

	ext := extract.New(extract.Config{
		Timeout:      time.Duration(cfg.Extractor.TimeoutSecs) * time.Second,
		UserAgent:    cfg.Extractor.UserAgent,
		MaxBodyBytes: cfg.Extractor.MaxBodyBytes,
	})
	svc := service.NewSummaryService(ext, sum, st, logger, service.Options{
		DefaultSentences: cfg.Summarizer.DefaultSentences,
		MinTextLength:    cfg.Summarizer.MinTextLength,
	})
	return &app{cfg: cfg, log: logger, store: st, svc: svc}, nil
}

func newSummarizer(cfg config.SummarizerConfig) (domain.Summarizer, error) {
	stop := stopwords.English()
	if cfg.StopwordsFile != "" {
		var err error
		if stop, err = stopwords.Load(cfg.StopwordsFile); err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
	}

	var opts []summarizer.Option
	if cfg.Splitter == "regex" {
		opts = append(opts, summarizer.WithSplitter(summarizer.NewRegexSplitter()))
	}
	switch cfg.Type {
	case "frequency", "":
		return summarizer.NewFrequencySummarizer(stop, opts...)
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Type)
	}
}

func (a *app) Close() error {
	err := a.store.Close()
	if cerr := a.log.Close(); err == nil {
		err = cerr
	}
	return err
}
