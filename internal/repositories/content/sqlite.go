package content

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
	"github.com/KirkDiggler/rpg-saga/internal/pkg/sqlitemigrate"
	"github.com/KirkDiggler/rpg-saga/internal/repositories/content/migrations"
)

const (
	// Error messages
	errEventIDEmpty    = "event ID cannot be empty"
	errDecisionIDEmpty = "decision ID cannot be empty"
	errCatalogNil      = "catalog cannot be nil"

	eventColumns    = `id, title, description, era, chronological_order, is_key_moment, required_previous_event_id`
	decisionColumns = `id, event_id, text, alignment, light_side_delta, dark_side_delta, resulting_emotion, narrative_context, display_order`
)

// Store persists canonical content in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite content store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if err := sqlitemigrate.Apply(ctx, db, migrations.FS, ""); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to run migrations")
	}

	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (entities.CanonicalEvent, error) {
	var (
		e         entities.CanonicalEvent
		era       string
		keyMoment int
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &era, &e.ChronologicalOrder,
		&keyMoment, &e.RequiredPreviousEventID); err != nil {
		return entities.CanonicalEvent{}, err
	}
	e.Era = entities.Era(era)
	e.IsKeyMoment = keyMoment != 0
	return e, nil
}

func scanDecision(row rowScanner) (entities.Decision, error) {
	var (
		d         entities.Decision
		alignment string
		emotion   string
	)
	if err := row.Scan(&d.ID, &d.EventID, &d.Text, &alignment,
		&d.Impact.LightSideDelta, &d.Impact.DarkSideDelta, &emotion,
		&d.NarrativeContext, &d.DisplayOrder); err != nil {
		return entities.Decision{}, err
	}
	d.Alignment = entities.Alignment(alignment)
	d.Impact.ResultingEmotion = entities.Emotion(emotion)
	return d, nil
}

func (s *Store) GetEvent(ctx context.Context, input GetEventInput) (*GetEventOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEventIDEmpty)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM canonical_events WHERE id = ?`, input.ID)
	event, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("event %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get event %s", input.ID)
	}

	return &GetEventOutput{Event: event}, nil
}

func (s *Store) ListEvents(ctx context.Context, _ ListEventsInput) (*ListEventsOutput, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM canonical_events ORDER BY chronological_order, id`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list events")
	}
	defer func() { _ = rows.Close() }()

	var events []entities.CanonicalEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan event")
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate events")
	}

	return &ListEventsOutput{Events: events}, nil
}

func (s *Store) ListDecisionsForEvent(
	ctx context.Context,
	input ListDecisionsForEventInput,
) (*ListDecisionsForEventOutput, error) {
	if input.EventID == "" {
		return nil, errors.InvalidArgument(errEventIDEmpty)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+decisionColumns+` FROM decisions WHERE event_id = ? ORDER BY display_order, id`,
		input.EventID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list decisions for event %s", input.EventID)
	}
	defer func() { _ = rows.Close() }()

	var decisions []entities.Decision
	for rows.Next() {
		decision, err := scanDecision(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan decision")
		}
		decisions = append(decisions, decision)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate decisions")
	}

	return &ListDecisionsForEventOutput{Decisions: decisions}, nil
}

func (s *Store) GetDecision(ctx context.Context, input GetDecisionInput) (*GetDecisionOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDecisionIDEmpty)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+decisionColumns+` FROM decisions WHERE id = ?`, input.ID)
	decision, err := scanDecision(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("decision %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get decision %s", input.ID)
	}

	return &GetDecisionOutput{Decision: decision}, nil
}

func (s *Store) Seed(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	if input.Catalog == nil {
		return nil, errors.InvalidArgument(errCatalogNil)
	}
	if err := input.Catalog.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin seed transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM decisions`); err != nil {
		return nil, errors.Wrapf(err, "failed to clear decisions")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM canonical_events`); err != nil {
		return nil, errors.Wrapf(err, "failed to clear events")
	}

	out := &SeedOutput{}
	for _, e := range input.Catalog.CanonicalEvents() {
		keyMoment := 0
		if e.IsKeyMoment {
			keyMoment = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO canonical_events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Description, string(e.Era), e.ChronologicalOrder, keyMoment,
			e.RequiredPreviousEventID,
		); err != nil {
			return nil, mapWriteError(err, "event", e.ID)
		}
		out.Events++
	}

	for _, d := range input.Catalog.AllDecisions() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO decisions (`+decisionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.EventID, d.Text, string(d.Alignment),
			d.Impact.LightSideDelta, d.Impact.DarkSideDelta, string(d.Impact.ResultingEmotion),
			d.NarrativeContext, d.DisplayOrder,
		); err != nil {
			return nil, mapWriteError(err, "decision", d.ID)
		}
		out.Decisions++
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit seed")
	}

	slog.InfoContext(ctx, "seeded content",
		"events", out.Events,
		"decisions", out.Decisions)

	return out, nil
}

func mapWriteError(err error, kind, id string) error {
	if isUniqueViolation(err) {
		return errors.AlreadyExistsf("%s %s already exists", kind, id)
	}
	return errors.Wrapf(err, "failed to insert %s %s", kind, id)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

var _ Repository = (*Store)(nil)
