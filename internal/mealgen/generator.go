package mealgen

import (
	"context"
	"log/slog"
	"time"

	"github.com/vbonduro/pantrychef/internal/domain"
	"github.com/vbonduro/pantrychef/internal/llm"
)

// Outcome tags how a set of suggestions was produced.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeUnconfigured Outcome = "unconfigured"
	OutcomeFailure      Outcome = "failure"
)

// Result always holds exactly the requested number of meals. Reason is set
// only for OutcomeFailure.
type Result struct {
	Outcome Outcome
	Meals   []domain.MealSuggestion
	Reason  string
}

// Recorder receives generation telemetry. metrics.Metrics satisfies it.
type Recorder interface {
	GenerationOutcome(outcome string)
	LLMCall(d time.Duration, err error)
}

type noopRecorder struct{}

func (noopRecorder) GenerationOutcome(string)     {}
func (noopRecorder) LLMCall(time.Duration, error) {}

type params struct {
	maxTokens   int
	temperature float64
}

var (
	multiParams  = params{maxTokens: 2000, temperature: 0.8}
	singleParams = params{maxTokens: 1000, temperature: 0.7}
)

type Generator struct {
	completer llm.Completer
	timeout   time.Duration
	recorder  Recorder
	logger    *slog.Logger
}

// NewGenerator builds a Generator. A nil completer leaves the generator
// permanently unconfigured. timeout bounds each model call; zero disables it.
func NewGenerator(completer llm.Completer, timeout time.Duration, recorder Recorder, logger *slog.Logger) *Generator {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		completer: completer,
		timeout:   timeout,
		recorder:  recorder,
		logger:    logger,
	}
}

func (g *Generator) Configured() bool {
	return g.completer != nil
}

// Generate returns count meals built from items. It never fails: model and
// parse errors become an OutcomeFailure result with placeholder meals.
func (g *Generator) Generate(ctx context.Context, items []domain.PantryItem, goal domain.CalorieGoal, count int) Result {
	if count < 1 {
		count = 1
	}
	p := multiParams
	if count == 1 {
		p = singleParams
	}
	return g.generate(ctx, items, goal, count, p)
}

// GenerateOne returns a Result holding exactly one meal.
func (g *Generator) GenerateOne(ctx context.Context, items []domain.PantryItem, goal domain.CalorieGoal) Result {
	return g.generate(ctx, items, goal, 1, singleParams)
}

func (g *Generator) generate(ctx context.Context, items []domain.PantryItem, goal domain.CalorieGoal, count int, p params) Result {
	res := g.run(ctx, items, goal, count, p)

	g.recorder.GenerationOutcome(string(res.Outcome))
	if res.Outcome == OutcomeFailure {
		g.logger.Warn("meal generation fell back", "outcome", res.Outcome, "meals", len(res.Meals), "reason", res.Reason)
	} else {
		g.logger.Info("meal generation", "outcome", res.Outcome, "meals", len(res.Meals))
	}
	return res
}

func (g *Generator) run(ctx context.Context, items []domain.PantryItem, goal domain.CalorieGoal, count int, p params) Result {
	if g.completer == nil {
		return Result{Outcome: OutcomeUnconfigured, Meals: Unconfigured(items, goal, count)}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := g.completer.Complete(ctx, llm.Request{
		System:      llm.SystemPrompt,
		Prompt:      BuildPrompt(items, goal, count),
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	g.recorder.LLMCall(time.Since(start), err)
	if err != nil {
		return failure(items, goal, count, err)
	}

	meals, err := ParseMeals(raw, goal)
	if err != nil {
		g.logger.Debug("unparseable model reply", "raw", raw)
		return failure(items, goal, count, err)
	}

	if len(meals) > count {
		meals = meals[:count]
	}
	return Result{Outcome: OutcomeSuccess, Meals: pad(meals, items, goal, count)}
}

func failure(items []domain.PantryItem, goal domain.CalorieGoal, count int, err error) Result {
	reason := err.Error()
	return Result{
		Outcome: OutcomeFailure,
		Meals:   Failure(items, goal, count, reason),
		Reason:  reason,
	}
}
