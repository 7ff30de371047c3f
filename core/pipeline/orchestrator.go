// ABOUTME: Orchestrator composes collector, engine, compiler and store for one run
// ABOUTME: Exposes a single RunOnce entry point; scheduling belongs to callers

package pipeline

import (
	"context"
	"time"

	"news-intel-api/core/domain"
	coreerrors "news-intel-api/core/errors"
	"news-intel-api/core/interfaces"
)

// StatusOK marks a completed pipeline run
const StatusOK = "ok"

// Collector is the collection capability required by the orchestrator
type Collector interface {
	Collect(ctx context.Context, industryKey string) ([]domain.Article, error)
}

// Analyzer is the analysis capability required by the orchestrator
type Analyzer interface {
	Analyze(ctx context.Context, articles []domain.Article, industryFocus string) domain.AnalysisResult
}

// Compiler is the report-rendering capability required by the orchestrator
type Compiler interface {
	Compile(articles []domain.Article, analysis domain.AnalysisResult) string
}

// RunResult is the outcome of one pipeline run
type RunResult struct {
	Status      string                 `json:"status"`
	Industry    string                 `json:"industry"`
	Articles    []domain.Article       `json:"articles,omitempty"`
	Analysis    *domain.AnalysisResult `json:"analysis,omitempty"`
	Report      string                 `json:"report,omitempty"`
	StoredCount int                    `json:"stored_count"`
	StartedAt   time.Time              `json:"started_at"`
	FinishedAt  time.Time              `json:"finished_at"`
}

// Orchestrator holds references to a collector, an engine, a compiler and a
// store, configured per call-site. Specialization is a different injection,
// not a subclass.
type Orchestrator struct {
	collector Collector
	analyzer  Analyzer
	compiler  Compiler
	store     interfaces.SnapshotStorage
	logger    interfaces.Logger
	now       func() time.Time
}

// NewOrchestrator wires the pipeline components. store may be nil for
// report-only use; compile and persistence then degrade gracefully.
func NewOrchestrator(collector Collector, analyzer Analyzer, compiler Compiler, store interfaces.SnapshotStorage, logger interfaces.Logger) *Orchestrator {
	return &Orchestrator{
		collector: collector,
		analyzer:  analyzer,
		compiler:  compiler,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// RunOnce executes one full pipeline run for an industry key: collect,
// analyze, compile, store. Per-source and analysis failures are absorbed
// into degraded results; only an empty collection or a persistence conflict
// surfaces as an error. The analysis runs on the exact slice instance the
// collector returned, so story IDs stay positional against that batch.
func (o *Orchestrator) RunOnce(ctx context.Context, industryKey string) (*RunResult, error) {
	startedAt := o.now()

	articles, err := o.collector.Collect(ctx, industryKey)
	if err != nil {
		return nil, coreerrors.WrapError(err, "collection failed")
	}

	if len(articles) == 0 {
		o.logWarn("No articles collected, halting run", map[string]interface{}{
			"industry": industryKey,
		})
		return nil, &coreerrors.EmptyCollectionError{Industry: industryKey}
	}

	analysis := o.analyzer.Analyze(ctx, articles, industryKey)

	var report string
	if o.compiler != nil {
		report = o.compiler.Compile(articles, analysis)
	}

	stored := 0
	if o.store != nil {
		stored, err = o.store.Store(ctx, articles, industryKey, &analysis)
		if err != nil {
			return nil, coreerrors.WrapError(err, "snapshot store failed")
		}
	}

	o.logInfo("Pipeline run completed", map[string]interface{}{
		"industry": industryKey,
		"articles": len(articles),
		"stored":   stored,
		"variant":  analysis.ProcessingInfo.Variant,
	})

	return &RunResult{
		Status:      StatusOK,
		Industry:    industryKey,
		Articles:    articles,
		Analysis:    &analysis,
		Report:      report,
		StoredCount: stored,
		StartedAt:   startedAt,
		FinishedAt:  o.now(),
	}, nil
}

func (o *Orchestrator) logInfo(msg string, fields map[string]interface{}) {
	if o.logger != nil {
		o.logger.Info(msg, fields)
	}
}

func (o *Orchestrator) logWarn(msg string, fields map[string]interface{}) {
	if o.logger != nil {
		o.logger.Warn(msg, fields)
	}
}
