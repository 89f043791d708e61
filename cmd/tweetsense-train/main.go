package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/tsawler/tweetsense"
	"github.com/tsawler/tweetsense/internal/config"
	"github.com/tsawler/tweetsense/internal/logging"
)

var configPath = flag.String("config", "", "Path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.Init(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	examples, err := tweetsense.LoadCorpusFile(cfg.Corpus.Path, tweetsense.CorpusOptions{
		Delimiter:      cfg.Corpus.DelimiterRune(),
		HeaderSentinel: cfg.Corpus.HeaderSentinel,
	})
	if err != nil {
		logger.Error("training failed", slog.String("error", err.Error()))
		logger.Info("expected a CSV with columns tweet_text,sentiment",
			slog.String("example", `"I love this product!",positive`))
		os.Exit(1)
	}
	logger.Info("loaded corpus", slog.String("path", cfg.Corpus.Path), slog.Int("examples", len(examples)))

	trainingConfig := tweetsense.DefaultTrainingConfig()
	trainingConfig.Logger = logger
	model, stats := tweetsense.NewTrainer(trainingConfig).Train(examples)

	if err := tweetsense.SaveModel(cfg.Model.Path, model); err != nil {
		logger.Error("failed to save model", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("model saved", slog.String("path", cfg.Model.Path))

	summary := tweetsense.Summarize(model, stats, tweetsense.SummaryOptions{
		SampleSize:      cfg.Report.SampleSize,
		SkipCommonWords: cfg.Report.SkipCommonWords,
	})
	if _, err := summary.WriteTo(os.Stdout); err != nil {
		logger.Error("failed to print summary", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
