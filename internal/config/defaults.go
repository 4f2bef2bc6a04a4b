package config

import (
	_ "embed"
)

//go:embed defaults/brawl.yaml
var defaultBrawlYAML []byte

// Source labels for configs not read from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)
