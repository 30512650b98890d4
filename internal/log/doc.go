// Package log provides a slog handler that keeps candidate passwords and
// other secrets out of log output. passcheck handles the most sensitive
// string a user can type, so every log attribute passes through a
// sanitizer before reaching the underlying handler.
package log
