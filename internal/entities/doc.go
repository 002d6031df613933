// Package entities holds the saga's value types: the moral axes, the
// closed emotion and title sets, story content, the protagonist and
// the decision audit trail.
package entities
