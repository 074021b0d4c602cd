package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
	"github.com/srinivasagudi0/Stark-Assistant/internal/ports"
)

// ConfirmFunc is asked before a destructive action runs. Returning false
// cancels the turn without touching filesystem or memory. A nil ConfirmFunc
// approves everything.
type ConfirmFunc func(ctx context.Context, action domain.ResolvedAction) (bool, error)

// Pipeline sequences classify, resolve and execute for one utterance at a
// time and owns the only writes to the memory store. Memory changes only
// after a successful execution; any failure leaves it exactly as it was
// when the turn began.
type Pipeline struct {
	classifier ports.Classifier
	memory     ports.MemoryStore
	executor   ports.Executor
	clock      ports.Clock
	confirm    ConfirmFunc
	logger     *zap.Logger
}

func NewPipeline(classifier ports.Classifier, memory ports.MemoryStore, executor ports.Executor, clock ports.Clock, confirm ConfirmFunc, logger *zap.Logger) *Pipeline {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		classifier: classifier,
		memory:     memory,
		executor:   executor,
		clock:      clock,
		confirm:    confirm,
		logger:     logger,
	}
}

// RunTurn processes one utterance end to end. Turn-local failures are
// reported inside the TurnResult, never as panics or process exits.
func (p *Pipeline) RunTurn(ctx context.Context, utterance string) TurnResult {
	turnID := uuid.NewString()
	log := p.logger.With(zap.String("turn_id", turnID))
	log.Info("command", zap.String("utterance", utterance))

	entry, remembered, err := p.memory.Get(ctx)
	if err != nil {
		return p.failTurn(log, fmt.Errorf("read memory: %w", err))
	}

	var snapshot *domain.MemoryEntry
	if remembered {
		snapshot = &entry
	}

	intent, err := p.classifier.Classify(ctx, utterance, ContextHint(snapshot))
	if err != nil {
		return p.failTurn(log, fmt.Errorf("classify utterance: %w", err))
	}

	if intent.Kind == domain.KindAnswer {
		log.Info("answer", zap.String("reply", intent.Answer))
		return TurnResult{Outcome: OutcomeAnswer, Answer: intent.Answer}
	}

	action, err := Resolve(intent, snapshot)
	if err != nil {
		return p.failTurn(log, fmt.Errorf("resolve references: %w", err))
	}

	if p.confirm != nil && action.Verb.Mutates() {
		approved, err := p.confirm(ctx, action)
		if err != nil {
			return p.failTurn(log, fmt.Errorf("confirm action: %w", err))
		}
		if !approved {
			log.Info("cancelled", zap.String("verb", string(action.Verb)), zap.String("target", action.Target))
			return TurnResult{Outcome: OutcomeCancelled, Answer: "Operation cancelled."}
		}
	}

	result, err := p.executor.Execute(ctx, action)
	if err != nil {
		return p.failTurn(log, fmt.Errorf("execute %s on %s: %w", action.Verb, action.Target, err))
	}

	if err := p.memory.Set(ctx, domain.MemoryEntry{
		Verb:      action.Verb,
		Target:    action.Target,
		Payload:   action.Payload,
		Timestamp: p.clock.Now(),
	}); err != nil {
		return p.failTurn(log, fmt.Errorf("remember action: %w", err))
	}

	log.Info("action",
		zap.String("verb", string(result.Verb)),
		zap.String("target", result.Target),
		zap.Bool("success", result.Success),
	)

	return TurnResult{Outcome: OutcomeAction, Action: result}
}

func (p *Pipeline) failTurn(log *zap.Logger, err error) TurnResult {
	log.Warn("turn failed", zap.Error(err))
	return TurnResult{Outcome: OutcomeError, Err: err}
}

// ContextHint formats the remembered action into a compact line the
// classifier prompt can use to ground references. Empty when nothing is
// remembered.
func ContextHint(entry *domain.MemoryEntry) string {
	if entry == nil {
		return ""
	}
	return fmt.Sprintf("The previous action was %s on %q.", entry.Verb, entry.Target)
}
