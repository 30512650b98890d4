// Package input implements the interactive prompt plumbing: masked
// password entry, repeat-entry confirmation, yes/no gates, and password
// list reading. All validation and estimation live elsewhere; this
// package only collects strings from the user.
package input
