package demo_configs

import (
	"embed"
)

// FS provides embedded example generator settings for external usage.
//
//go:embed *.yaml *.json
var FS embed.FS
