// Package charset defines the character classes recognized by passcheck
// and the pure predicates used to profile a candidate password.
package charset
