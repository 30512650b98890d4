// Package model defines the data structures produced by a password
// analysis: the security tier, the analysis report, and the helpers that
// turn estimated break times into human-readable text.
package model
