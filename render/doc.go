// Package render turns generated runs into human-readable output: a titled
// terminal table (lipgloss) or CSV. Labels come from a Labeler, either the
// Symbolic scheme (F1, a1, ...) or a catalog of real factor and level names.
package render
