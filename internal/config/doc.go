// Package config provides configuration structures and utilities for
// passcheck. It defines the attacker model (hash rate, tier thresholds)
// and the report and batch options, with YAML file loading and XDG-aware
// search paths.
package config
