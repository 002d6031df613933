// Package journey implements the journey orchestrator
package journey

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-saga/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/telemetry"
	characterrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/character"
	contentrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/content"
	historyrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/history"
	"github.com/KirkDiggler/rpg-saga/internal/services/journey"
)

// DefaultNarratorTimeout bounds one narrator call when Config.NarratorTimeout is unset
const DefaultNarratorTimeout = 10 * time.Second

const tracerName = "github.com/KirkDiggler/rpg-saga/internal/orchestrators/journey"

// Config holds the dependencies for the journey orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	HistoryRepo   historyrepo.Repository
	ContentRepo   contentrepo.Repository
	Narrator      narrator.Client
	EventBus      events.EventBus

	// Optional, defaults to the real clock
	Clock clock.Clock

	// Optional, default to prefixed UUIDs
	SessionIDGen   idgen.Generator
	CharacterIDGen idgen.Generator
	RecordIDGen    idgen.Generator

	// Optional, defaults to entities.DefaultProtagonistName
	ProtagonistName string

	// Optional, defaults to DefaultNarratorTimeout
	NarratorTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}
	if c.Narrator == nil {
		vb.RequiredField("Narrator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.NarratorTimeout < 0 {
		vb.InvalidField("NarratorTimeout", "must not be negative")
	}

	return vb.Build()
}

// Orchestrator implements the journey.Service interface
type Orchestrator struct {
	characterRepo   characterrepo.Repository
	historyRepo     historyrepo.Repository
	contentRepo     contentrepo.Repository
	narrator        narrator.Client
	eventBus        events.EventBus
	clock           clock.Clock
	sessionIDGen    idgen.Generator
	characterIDGen  idgen.Generator
	recordIDGen     idgen.Generator
	protagonistName string
	narratorTimeout time.Duration
	tracer          trace.Tracer
	locks           *sessionLocks
}

// New creates a new journey orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		characterRepo:   cfg.CharacterRepo,
		historyRepo:     cfg.HistoryRepo,
		contentRepo:     cfg.ContentRepo,
		narrator:        cfg.Narrator,
		eventBus:        cfg.EventBus,
		clock:           cfg.Clock,
		sessionIDGen:    cfg.SessionIDGen,
		characterIDGen:  cfg.CharacterIDGen,
		recordIDGen:     cfg.RecordIDGen,
		protagonistName: cfg.ProtagonistName,
		narratorTimeout: cfg.NarratorTimeout,
		tracer:          telemetry.Tracer(tracerName),
		locks:           newSessionLocks(),
	}

	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.sessionIDGen == nil {
		o.sessionIDGen = idgen.NewUUID("session")
	}
	if o.characterIDGen == nil {
		o.characterIDGen = idgen.NewUUID("char")
	}
	if o.recordIDGen == nil {
		o.recordIDGen = idgen.NewUUID("rec")
	}
	if o.protagonistName == "" {
		o.protagonistName = entities.DefaultProtagonistName
	}
	if o.narratorTimeout == 0 {
		o.narratorTimeout = DefaultNarratorTimeout
	}

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ journey.Service = (*Orchestrator)(nil)

// StartSession creates a session and its protagonist
func (o *Orchestrator) StartSession(ctx context.Context, input *journey.StartSessionInput) (_ *journey.StartSessionOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sessionID := o.sessionIDGen.Generate()
	ctx, span := o.startSpan(ctx, "StartSession", sessionID)
	defer func() { endSpan(span, err) }()

	name := input.Name
	if name == "" {
		name = o.protagonistName
	}

	char := entities.NewProtagonist(o.characterIDGen.Generate(), sessionID, name, o.clock.Now())

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.InfoContext(ctx, "session started",
		"session_id", sessionID,
		"character_id", created.Character.ID,
		"name", created.Character.Name)

	return &journey.StartSessionOutput{
		SessionID: sessionID,
		Character: journey.NewCharacterState(created.Character),
	}, nil
}

// Health reports whether the narrator answers its probe
func (o *Orchestrator) Health(ctx context.Context, _ *journey.HealthInput) (*journey.HealthOutput, error) {
	return &journey.HealthOutput{
		NarratorAvailable: o.narrator.IsAvailable(ctx),
	}, nil
}

// loadSessionCharacter resolves the session's protagonist. A missing
// character means the session does not exist.
func (o *Orchestrator) loadSessionCharacter(ctx context.Context, sessionID string) (entities.Character, error) {
	out, err := o.characterRepo.GetBySession(ctx, characterrepo.GetBySessionInput{SessionID: sessionID})
	if err != nil {
		if errors.IsNotFound(err) {
			return entities.Character{}, errors.NotFoundf("session %s not found", sessionID)
		}
		return entities.Character{}, errors.Wrapf(err, "failed to load session %s", sessionID)
	}
	return out.Character, nil
}

func (o *Orchestrator) loadCompleted(ctx context.Context, sessionID string) ([]string, error) {
	out, err := o.historyRepo.CompletedEventIDs(ctx, historyrepo.CompletedEventIDsInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load completed events")
	}
	return out.EventIDs, nil
}

func (o *Orchestrator) startSpan(
	ctx context.Context,
	op, sessionID string,
	attrs ...attribute.KeyValue,
) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("session_id", sessionID))
	return o.tracer.Start(ctx, "journey."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errors.GetMessage(err))
		span.SetAttributes(attribute.String("error.code", string(errors.GetCode(err))))
	}
	span.End()
}

func validateSession(sessionID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", sessionID, vb)
	return vb.Build()
}
