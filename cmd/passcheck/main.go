// Package main provides the entry point for the passcheck CLI.
//
// Passcheck analyzes password composition and estimates how long a
// brute-force attacker would need to break the password, then classifies
// it into a security tier and suggests improvements.
//
// Usage:
//
//	passcheck check
//	passcheck check --list <file>
//
// See --help for all available options.
package main

// main is the entry point for passcheck.
func main() {
	Execute()
}
