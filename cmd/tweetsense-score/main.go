package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/tsawler/tweetsense"
	"github.com/tsawler/tweetsense/internal/config"
	"github.com/tsawler/tweetsense/internal/logging"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	useModel   = flag.Bool("model", false, "Score with the trained model instead of the lexicon")
	enhanced   = flag.Bool("enhanced", true, "Use sentence-level lexicon scoring")
	fromStdin  = flag.Bool("json", false, "Read a JSON request from stdin")
)

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

	req := tweetsense.ScoreRequest{
		Text:     strings.Join(flag.Args(), " "),
		UseModel: *useModel,
		Enhanced: *enhanced,
	}
	if *fromStdin {
		req, err = tweetsense.DecodeScoreRequest(os.Stdin)
		if err != nil {
			logger.Error("bad request", slog.String("error", err.Error()))
			os.Exit(2)
		}
	}

	var analyzer *tweetsense.ModelAnalyzer
	if req.UseModel {
		model, err := tweetsense.LoadModel(cfg.Model.Path)
		if err != nil {
			logger.Error("failed to load model", slog.String("error", err.Error()))
			os.Exit(1)
		}
		analyzer = tweetsense.NewModelAnalyzer(model)
		logger.Debug("model loaded", slog.String("path", cfg.Model.Path))
	}

	resp, err := tweetsense.NewScorer(nil, analyzer).Score(req)
	if err != nil {
		logger.Error("scoring failed", slog.String("error", err.Error()))
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		logger.Error("failed to write response", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
