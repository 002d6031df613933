// Package engine holds the saga's rules as pure functions: how a decision
// moves a character, which events a session may open, and how a
// transition is shaped for the narrator.
//
// Nothing here performs I/O or reads the clock; callers pass time in.
package engine
