package probe

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"mediapeek/internal/fetch"
	"mediapeek/internal/fileutil"
	"mediapeek/internal/logging"
	"mediapeek/internal/mediainfo"
	"mediapeek/internal/services"
	"mediapeek/internal/source"
	"mediapeek/internal/workdir"
)

// Engine sequences range resolution, window downloads, and tool
// invocations for probe sessions. Sessions share no mutable state, so one
// Engine may serve concurrent callers.
type Engine struct {
	settings  Settings
	client    *fetch.Client
	invoker   *mediainfo.Invoker
	workspace *workdir.Manager
	logger    *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClient substitutes the HTTP fetch client.
func WithClient(client *fetch.Client) Option {
	return func(e *Engine) {
		if client != nil {
			e.client = client
		}
	}
}

// WithInvoker substitutes the inspection tool invoker.
func WithInvoker(invoker *mediainfo.Invoker) Option {
	return func(e *Engine) {
		if invoker != nil {
			e.invoker = invoker
		}
	}
}

// WithLogger attaches a logger for session diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logging.NewComponentLogger(logger, "probe")
		}
	}
}

// NewEngine builds an Engine with the given immutable settings.
func NewEngine(settings Settings, opts ...Option) *Engine {
	engine := &Engine{
		settings: settings.withDefaults(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.client == nil {
		engine.client = fetch.NewClient()
	}
	if engine.invoker == nil {
		engine.invoker = mediainfo.NewInvoker(engine.settings.Binary)
	}
	engine.workspace = workdir.NewManager(engine.settings.WorkDir, workdir.WithLogger(engine.logger))
	return engine
}

// Run executes one probe session against the locator and returns the best
// outcome the strategies produced. Every scratch window the session
// creates is deleted before Run returns, including partials from failed
// downloads.
func (e *Engine) Run(ctx context.Context, loc source.Locator) (Outcome, error) {
	sess, err := e.workspace.NewSession(loc.Name())
	if err != nil {
		return Outcome{}, err
	}
	defer sess.Sweep()

	ctx = services.WithSessionID(ctx, sess.ID())
	ctx = services.WithSource(ctx, loc.Name())
	logger := logging.WithContext(ctx, e.logger)
	logger.Info("probe session started")

	if loc.IsRemote() {
		return e.probeRemote(ctx, logger, sess, loc)
	}
	return e.probeLocal(ctx, logger, loc)
}

// probeLocal inspects a local file in place. Budgets apply to remote
// fetches only; local objects are always probed whole.
func (e *Engine) probeLocal(ctx context.Context, logger *slog.Logger, loc source.Locator) (Outcome, error) {
	stat, err := os.Stat(loc.Path())
	if err != nil {
		return Outcome{}, services.Wrap(services.ErrNotFound, "probe", "stat", "local object unreadable", err)
	}
	raw := e.inspectPath(ctx, logger, loc.Path())
	outcome := buildOutcome(raw, StrategyLocal, stat.Size())
	logger.Info("local probe complete",
		logging.Int64(logging.FieldBytes, stat.Size()),
		logging.Int("tracks", len(outcome.Tracks)))
	return outcome, nil
}

func (e *Engine) probeRemote(ctx context.Context, logger *slog.Logger, sess *workdir.Session, loc source.Locator) (Outcome, error) {
	state := StateResolveRange
	info := e.client.Resolve(ctx, loc.URL())
	logger.Debug("range resolved",
		logging.Int64("content_length", info.ContentLength),
		logging.Bool("accepts_ranges", info.AcceptsRanges))
	state = Advance(state, Attempt{}, info)

	if info.SizeKnown() && info.ContentLength <= e.settings.FullThresholdBytes {
		if outcome, ok := e.probeFull(ctx, sess, loc, info); ok {
			return outcome, nil
		}
	}

	var candidates []candidate
	for state != StateDone {
		var cand candidate
		var attempt Attempt
		switch state {
		case StateTryHeader:
			cand, attempt = e.tryHeader(ctx, sess, loc)
		case StateTryTail:
			cand, attempt = e.tryTail(ctx, sess, loc, info)
		case StateTryConcat:
			cand, attempt = e.tryConcat(ctx, sess, candidates)
		}
		if attempt.WroteBytes {
			candidates = append(candidates, cand)
		}
		next := Advance(state, attempt, info)
		logger.Debug("strategy state advanced",
			logging.String("from", state.String()),
			logging.String("to", next.String()))
		state = next
	}

	if len(candidates) == 0 {
		return Outcome{}, services.Wrap(ErrNoMetadata, "probe", "fetch", "no window could be fetched", nil)
	}

	best := pickBest(candidates)
	size := info.ContentLength
	if size <= 0 {
		size = best.bytes
	}
	outcome := buildOutcome(best.raw, best.strategy, size)
	logger.Info("probe session complete",
		logging.String(logging.FieldStrategy, string(best.strategy)),
		logging.Int("tracks", len(outcome.Tracks)),
		logging.Bool("sufficient", best.sufficient))
	return outcome, nil
}

// probeFull downloads a small object whole, skipping range logic. A
// download failure falls back to the windowed strategies.
func (e *Engine) probeFull(ctx context.Context, sess *workdir.Session, loc source.Locator, info fetch.RangeInfo) (Outcome, bool) {
	ctx = services.WithStage(ctx, string(StrategyFull))
	logger := logging.WithContext(ctx, e.logger)

	dest := sess.Path("full.bin")
	written, err := e.client.FetchFull(ctx, loc.URL(), dest, info.ContentLength)
	if err != nil {
		logger.Warn("full download failed, falling back to windowed probing", logging.Error(err))
		return Outcome{}, false
	}
	raw := e.inspectPath(ctx, logger, dest)
	outcome := buildOutcome(raw, StrategyFull, info.ContentLength)
	logger.Info("full object probed",
		logging.Int64(logging.FieldBytes, written),
		logging.Int("tracks", len(outcome.Tracks)))
	return outcome, true
}

func (e *Engine) tryHeader(ctx context.Context, sess *workdir.Session, loc source.Locator) (candidate, Attempt) {
	ctx = services.WithStage(ctx, string(StrategyHeader))
	logger := logging.WithContext(ctx, e.logger)

	dest := sess.Path("header.bin")
	written, err := e.client.FetchWindow(ctx, loc.URL(), 0, e.settings.HeaderBudgetBytes-1, dest)
	if err != nil {
		logger.Warn("header window fetch failed", logging.Error(err))
		return candidate{}, Attempt{}
	}
	return e.classify(ctx, logger, StrategyHeader, dest, written)
}

func (e *Engine) tryTail(ctx context.Context, sess *workdir.Session, loc source.Locator, info fetch.RangeInfo) (candidate, Attempt) {
	ctx = services.WithStage(ctx, string(StrategyTail))
	logger := logging.WithContext(ctx, e.logger)

	start := info.ContentLength - e.settings.TailBudgetBytes
	if start < 0 {
		start = 0
	}
	dest := sess.Path("tail.bin")
	written, err := e.client.FetchWindow(ctx, loc.URL(), start, info.ContentLength-1, dest)
	if err != nil {
		logger.Warn("tail window fetch failed", logging.Error(err))
		return candidate{}, Attempt{}
	}
	return e.classify(ctx, logger, StrategyTail, dest, written)
}

// tryConcat joins the header and tail windows into a third window so the
// tool can see metadata atoms that straddle the gap.
func (e *Engine) tryConcat(ctx context.Context, sess *workdir.Session, candidates []candidate) (candidate, Attempt) {
	ctx = services.WithStage(ctx, string(StrategyConcat))
	logger := logging.WithContext(ctx, e.logger)

	header := windowFor(candidates, StrategyHeader)
	tail := windowFor(candidates, StrategyTail)
	if header == "" || tail == "" {
		return candidate{}, Attempt{}
	}
	dest := sess.Path("concat.bin")
	total, err := fileutil.Concat(dest, header, tail)
	if err != nil {
		logger.Warn("concat window failed", logging.Error(err))
		return candidate{}, Attempt{}
	}
	return e.classify(ctx, logger, StrategyConcat, dest, total)
}

// classify probes a freshly written window and grades its report.
func (e *Engine) classify(ctx context.Context, logger *slog.Logger, strategy Strategy, window string, written int64) (candidate, Attempt) {
	raw := e.inspectPath(ctx, logger, window)
	cand := candidate{
		strategy:   strategy,
		window:     window,
		bytes:      written,
		raw:        raw,
		sufficient: mediainfo.IsSufficient(raw),
	}
	logger.Info("window probed",
		logging.String(logging.FieldStrategy, string(strategy)),
		logging.Int64(logging.FieldBytes, written),
		logging.Bool("sufficient", cand.sufficient))
	return cand, Attempt{WroteBytes: written > 0, Sufficient: cand.sufficient}
}

// inspectPath runs the tool and folds any failure into an empty report,
// which the classifier treats exactly like an insufficient one.
func (e *Engine) inspectPath(ctx context.Context, logger *slog.Logger, path string) string {
	raw, err := e.invoker.Inspect(ctx, path)
	if err != nil {
		logger.Warn("inspection produced no report", logging.Error(err))
		return ""
	}
	return raw
}

type candidate struct {
	strategy   Strategy
	window     string
	bytes      int64
	raw        string
	sufficient bool
}

// pickBest prefers the first sufficient report in strategy order, then
// the first non-empty report as a last resort.
func pickBest(candidates []candidate) candidate {
	for _, cand := range candidates {
		if cand.sufficient {
			return cand
		}
	}
	for _, cand := range candidates {
		if strings.TrimSpace(cand.raw) != "" {
			return cand
		}
	}
	return candidates[0]
}

func windowFor(candidates []candidate, strategy Strategy) string {
	for _, cand := range candidates {
		if cand.strategy == strategy {
			return cand.window
		}
	}
	return ""
}
