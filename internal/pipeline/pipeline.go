package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ppiankov/countrygen/internal/codegen"
	"github.com/ppiankov/countrygen/internal/model"
)

// Pipeline orchestrates a single generator run
type Pipeline struct {
	config    model.Config
	fs        afero.Fs
	fetcher   Downloader
	renderer  *codegen.Renderer
	normalize codegen.NormalizeFunc
	logger    *zap.Logger

	state       State
	transitions []State
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithFilesystem sets the filesystem used for the scratch copy and the artifact
func WithFilesystem(fs afero.Fs) Option {
	return func(p *Pipeline) { p.fs = fs }
}

// WithLogger sets the progress logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithDownloader replaces the HTTP fetcher
func WithDownloader(d Downloader) Option {
	return func(p *Pipeline) { p.fetcher = d }
}

// NewPipeline creates a new pipeline with the given configuration.
// The configuration is copied; later changes to cfg do not affect the run.
func NewPipeline(cfg *model.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	normalize, err := codegen.NormalizerFor(cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	renderer, err := codegen.NewRenderer(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	p := &Pipeline{
		config:      *cfg,
		fs:          afero.NewOsFs(),
		renderer:    renderer,
		normalize:   normalize,
		logger:      zap.NewNop(),
		state:       StateIdle,
		transitions: []State{StateIdle},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fetcher == nil {
		p.fetcher = NewFetcher(p.config.HTTP)
	}

	return p, nil
}

// Result summarizes a successful run
type Result struct {
	Countries       int
	DestinationPath string
	Bytes           int
	Duration        time.Duration
}

// State returns the current state of the run
func (p *Pipeline) State() State {
	return p.state
}

// Transitions returns every state the run has entered, in order
func (p *Pipeline) Transitions() []State {
	out := make([]State, len(p.transitions))
	copy(out, p.transitions)
	return out
}

// Run executes the generator once. The destination file is written only
// after the whole artifact has been rendered.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if p.state != StateIdle {
		return nil, fmt.Errorf("pipeline already ran (state %s)", p.state)
	}

	start := time.Now()
	p.logger.Info("country generator started", zap.String("source", p.config.SourceURL))

	// 1. Download into a fresh scratch copy
	if err := p.acquire(ctx); err != nil {
		return nil, p.fail(err)
	}

	// 2. Decode records
	records, err := p.parse()
	if err != nil {
		return nil, p.fail(err)
	}

	// 3. Sort by display name, then derive identifiers
	entries := p.transform(records)

	// 4. Render with identifier validation
	artifact, err := p.render(entries)
	if err != nil {
		return nil, p.fail(err)
	}

	// 5. Write the artifact
	if err := p.persist(artifact); err != nil {
		return nil, p.fail(err)
	}

	p.enter(StateDone)
	result := &Result{
		Countries:       len(entries),
		DestinationPath: p.config.DestinationPath,
		Bytes:           len(artifact),
		Duration:        time.Since(start),
	}
	p.logger.Info("country generator finished",
		zap.Int("countries", result.Countries),
		zap.String("destination", result.DestinationPath),
		zap.Duration("took", result.Duration))

	return result, nil
}

func (p *Pipeline) acquire(ctx context.Context) error {
	p.enter(StateFetching)

	if err := deleteIfExists(p.fs, p.config.LocalCachePath); err != nil {
		return p.stageError(ErrPersistence, fmt.Errorf("remove stale copy: %w", err))
	}

	p.logger.Info("downloading country file", zap.String("url", p.config.SourceURL))
	res, err := p.fetcher.Fetch(ctx, p.config.SourceURL)
	if err != nil {
		return p.stageError(ErrAcquisition, err)
	}

	if err := afero.WriteFile(p.fs, p.config.LocalCachePath, res.Body, 0o644); err != nil {
		return p.stageError(ErrPersistence, fmt.Errorf("save country file: %w", err))
	}

	p.logger.Info("country file downloaded",
		zap.String("path", p.config.LocalCachePath),
		zap.Int("bytes", len(res.Body)),
		zap.String("final_url", res.FinalURL))

	return nil
}

func (p *Pipeline) parse() ([]model.CountryRecord, error) {
	p.enter(StateParsing)

	data, err := afero.ReadFile(p.fs, p.config.LocalCachePath)
	if err != nil {
		return nil, p.stageError(ErrPersistence, fmt.Errorf("read country file: %w", err))
	}

	records, err := ParseCountries(data)
	if err != nil {
		return nil, p.stageError(ErrParse, err)
	}

	p.logger.Info("loaded country data", zap.Int("countries", len(records)))
	return records, nil
}

func (p *Pipeline) transform(records []model.CountryRecord) []model.NormalizedEntry {
	p.enter(StateTransforming)
	p.logger.Info("started parsing country data")

	entries := codegen.NormalizeAll(codegen.SortRecords(records), p.normalize)
	for _, e := range entries {
		p.logger.Info("saving country",
			zap.String("name", e.DisplayName),
			zap.String("identifier", e.Identifier))
	}

	return entries
}

func (p *Pipeline) render(entries []model.NormalizedEntry) (string, error) {
	p.enter(StateRendering)

	artifact, err := p.renderer.Render(entries)
	if err != nil {
		return "", p.stageError(ErrValidation, err)
	}

	return artifact, nil
}

func (p *Pipeline) persist(artifact string) error {
	p.enter(StatePersisting)

	if err := afero.WriteFile(p.fs, p.config.DestinationPath, []byte(artifact), 0o644); err != nil {
		return p.stageError(ErrPersistence, fmt.Errorf("write artifact: %w", err))
	}

	p.logger.Info("country data parsed", zap.String("destination", p.config.DestinationPath))
	return nil
}

func (p *Pipeline) enter(next State) {
	p.logger.Debug("state change", zap.String("from", string(p.state)), zap.String("to", string(next)))
	p.state = next
	p.transitions = append(p.transitions, next)
}

func (p *Pipeline) stageError(kind, err error) error {
	return &StageError{Stage: p.state, Kind: kind, Err: err}
}

// fail moves the run to the failed state. The caller reports err.
func (p *Pipeline) fail(err error) error {
	stage := p.state
	p.enter(StateFailed)
	p.logger.Debug("country generator failed", zap.String("stage", string(stage)), zap.Error(err))
	return err
}

// deleteIfExists removes path, ignoring a missing file
func deleteIfExists(fs afero.Fs, path string) error {
	if err := fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
