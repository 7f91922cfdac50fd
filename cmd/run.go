package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/studyplan/qengine/internal/config"
	"github.com/studyplan/qengine/internal/logging"
	"github.com/studyplan/qengine/internal/problemgen"
	"github.com/studyplan/qengine/internal/store"
	"github.com/studyplan/qengine/internal/templates"
	"github.com/studyplan/qengine/internal/vocab"
)

// runtime holds the dependencies shared by the subcommands.
type runtime struct {
	cfg   *config.Config
	log   *logrus.Logger
	store *store.Store

	logs       *store.LogRepo
	vocab      *store.VocabularyRepo
	vocabCache *vocab.Cache
	perf       *store.PerformanceRepo

	templatesPath string
	engine        *problemgen.Engine
}

// openRuntime loads config, opens the store and builds the repositories.
// Callers must Close the runtime.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	ctx := cmd.Context()

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.WithField("path", dbPath).Debug("store opened")

	perfRepo, err := st.PerformanceRepo(ctx)
	if err != nil {
		st.Close()
		return nil, err
	}

	tmplPath := cfg.Templates.Path
	if p, _ := cmd.Flags().GetString("templates"); p != "" {
		tmplPath = p
	}

	vocabRepo := st.VocabularyRepo()
	return &runtime{
		cfg:           cfg,
		log:           log,
		store:         st,
		logs:          st.LogRepo(cfg.Engine.RecentWindow),
		vocab:         vocabRepo,
		vocabCache:    vocab.NewCache(vocabRepo.AllVocabulary),
		perf:          perfRepo,
		templatesPath: tmplPath,
	}, nil
}

// Engine builds the question engine on first use. The template bank is
// read at that point.
func (r *runtime) Engine() *problemgen.Engine {
	if r.engine == nil {
		gen := r.cfg.Generator()
		r.engine = problemgen.New(problemgen.Options{
			Logs:        r.logs,
			Vocabulary:  r.vocabCache,
			Templates:   templates.NewFileBank(r.templatesPath, r.log),
			Performance: r.perf,
			Config:      &gen,
			Rand:        problemgen.NewRand(r.cfg.Engine.Seed),
			Logger:      r.log,
		})
	}
	return r.engine
}

func (r *runtime) Close() error {
	return r.store.Close()
}
