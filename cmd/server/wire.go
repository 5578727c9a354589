package main

import (
	"context"
	"fmt"

	"github.com/artem13815/atsmatch/pkg/analysis"
	"github.com/artem13815/atsmatch/pkg/config"
	"github.com/artem13815/atsmatch/pkg/health"
	"github.com/artem13815/atsmatch/pkg/health/checkers"
	"github.com/artem13815/atsmatch/pkg/llm"
	"github.com/artem13815/atsmatch/pkg/llm/gemini"
	"github.com/artem13815/atsmatch/pkg/llm/openrouter"
	"github.com/artem13815/atsmatch/pkg/logger"
	"github.com/artem13815/atsmatch/pkg/nlp"
	"github.com/artem13815/atsmatch/pkg/repository/memory"
	pgrepo "github.com/artem13815/atsmatch/pkg/repository/postgres"
	sqliterepo "github.com/artem13815/atsmatch/pkg/repository/sqlite"
	"github.com/artem13815/atsmatch/pkg/resume"
	"github.com/artem13815/atsmatch/pkg/storage/postgres"
	"github.com/artem13815/atsmatch/pkg/storage/sqlite"
)

// deps — собранные зависимости приложения.
type deps struct {
	analysis  analysis.UseCase
	parser    *resume.Parser
	readiness health.ReadinessUseCase
	closers   []func()
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// wire builds the store, the scorer and the analysis pipeline from cfg.
func wire(ctx context.Context, cfg config.Config) (*deps, error) {
	d := &deps{parser: resume.NewParser()}

	repo, checker, err := openStore(ctx, cfg, d)
	if err != nil {
		d.Close()
		return nil, err
	}
	if checker != nil {
		d.readiness = health.NewService(checker)
	} else {
		d.readiness = health.NewService()
	}

	scorer, err := newScorer(ctx, cfg, d)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.analysis = analysis.NewService(repo, d.parser, nlp.NewMatcher(), scorer, cfg.LLMTimeout)
	return d, nil
}

func openStore(ctx context.Context, cfg config.Config, d *deps) (analysis.Repository, health.Checker, error) {
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		d.closers = append(d.closers, pool.Close)
		repo, err := pgrepo.NewAnalysisRepository(pool)
		if err != nil {
			return nil, nil, fmt.Errorf("init analysis repo: %w", err)
		}
		return repo, checkers.NewPing("postgres", pool.Ping), nil
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		d.closers = append(d.closers, func() { _ = db.Close() })
		repo, err := sqliterepo.NewAnalysisRepository(db)
		if err != nil {
			return nil, nil, fmt.Errorf("init analysis repo: %w", err)
		}
		return repo, checkers.NewPing("sqlite", db.PingContext), nil
	default:
		logger.Warn().Msg("analyses are kept in memory and lost on restart")
		return memory.NewAnalysisRepository(), nil, nil
	}
}

// newScorer returns nil when no provider is configured; reports then use the
// fallback assessment.
func newScorer(ctx context.Context, cfg config.Config, d *deps) (analysis.Scorer, error) {
	var model llm.ChatModel
	switch cfg.LLMProvider {
	case "openrouter":
		if cfg.OpenRouterAPIKey == "" {
			break
		}
		model = openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterBase, cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle, cfg.OpenRouterReferer, cfg.LLMTimeout)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			break
		}
		model = openrouter.New(cfg.OpenAIAPIKey, openrouter.OpenAIBaseURL, cfg.OpenAIModel, "", "", cfg.LLMTimeout)
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			break
		}
		g, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, func() { _ = g.Close() })
		model = g
	}
	if model == nil {
		logger.Warn().Str("provider", cfg.LLMProvider).Msg("LLM scoring disabled, fallback assessment will be used")
		return nil, nil
	}

	scorer, err := analysis.NewLLMScorer(llm.NewRateLimited(model, cfg.LLMRequestsPerMin), cfg.LLMMaxChars)
	if err != nil {
		return nil, fmt.Errorf("init scorer: %w", err)
	}
	logger.Info().Str("provider", cfg.LLMProvider).Msg("LLM scoring enabled")
	return scorer, nil
}
