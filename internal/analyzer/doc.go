// Package analyzer wires the character classifier and the brute-force
// estimator into a single analysis call, and provides concurrent batch
// auditing of password lists.
package analyzer
