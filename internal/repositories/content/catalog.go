package content

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-saga/internal/engine"
	"github.com/KirkDiggler/rpg-saga/internal/entities"
	"github.com/KirkDiggler/rpg-saga/internal/errors"
)

//go:embed seed/saga.yaml
var defaultCatalogYAML []byte

// Catalog is the authored content set loaded from YAML
type Catalog struct {
	Events []EventSpec `yaml:"events"`
}

// EventSpec is an event with the decisions offered at it
type EventSpec struct {
	entities.CanonicalEvent `yaml:",inline"`
	Decisions               []entities.Decision `yaml:"decisions"`
}

// DefaultCatalog returns the content shipped with the binary
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}

// LoadCatalogFile reads and validates a catalog from disk
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadCatalog(f)
}

// LoadCatalog decodes and validates a catalog. Unknown YAML fields are rejected.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	for i := range c.Events {
		for j := range c.Events[i].Decisions {
			c.Events[i].Decisions[j].EventID = c.Events[i].ID
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// CanonicalEvents returns the catalog's events in chronological order
func (c *Catalog) CanonicalEvents() []entities.CanonicalEvent {
	events := make([]entities.CanonicalEvent, 0, len(c.Events))
	for _, spec := range c.Events {
		events = append(events, spec.CanonicalEvent)
	}
	engine.SortChronologically(events)
	return events
}

// AllDecisions returns every decision in the catalog
func (c *Catalog) AllDecisions() []entities.Decision {
	var decisions []entities.Decision
	for _, spec := range c.Events {
		decisions = append(decisions, spec.Decisions...)
	}
	return decisions
}

// Validate checks identity, references and the prerequisite chain
func (c *Catalog) Validate() error {
	if len(c.Events) == 0 {
		return errors.InvariantViolation("catalog has no events")
	}

	eventIDs := make(map[string]entities.CanonicalEvent, len(c.Events))
	decisionIDs := make(map[string]string)

	for _, spec := range c.Events {
		if err := spec.CanonicalEvent.Validate(); err != nil {
			return err
		}
		if _, dup := eventIDs[spec.ID]; dup {
			return errors.InvariantViolationf("duplicate event id %s", spec.ID)
		}
		eventIDs[spec.ID] = spec.CanonicalEvent

		if len(spec.Decisions) == 0 {
			return errors.InvariantViolationf("event %s offers no decisions", spec.ID)
		}
		for _, d := range spec.Decisions {
			if err := d.Validate(); err != nil {
				return err
			}
			if owner, dup := decisionIDs[d.ID]; dup {
				return errors.InvariantViolationf("decision id %s used by events %s and %s", d.ID, owner, spec.ID)
			}
			decisionIDs[d.ID] = spec.ID
		}
	}

	for _, spec := range c.Events {
		if !spec.HasPrerequisite() {
			continue
		}
		if _, ok := eventIDs[spec.RequiredPreviousEventID]; !ok {
			return errors.InvariantViolationf("event %s requires unknown event %s",
				spec.ID, spec.RequiredPreviousEventID)
		}
		if err := checkChain(spec.CanonicalEvent, eventIDs); err != nil {
			return err
		}
	}

	return nil
}

// checkChain walks the predecessors of start and fails on a cycle
func checkChain(start entities.CanonicalEvent, events map[string]entities.CanonicalEvent) error {
	seen := map[string]struct{}{start.ID: {}}
	current := start
	for current.HasPrerequisite() {
		next, ok := events[current.RequiredPreviousEventID]
		if !ok {
			return nil
		}
		if _, loop := seen[next.ID]; loop {
			return errors.InvariantViolationf("event %s is part of a prerequisite cycle", start.ID)
		}
		seen[next.ID] = struct{}{}
		current = next
	}
	return nil
}
