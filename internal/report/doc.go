// Package report renders analysis results in human-readable, JSON, and
// Markdown formats.
package report
