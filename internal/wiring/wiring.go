// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rig/internal/adapters/config"
	_ "go.trai.ch/rig/internal/adapters/host"
	_ "go.trai.ch/rig/internal/adapters/inject"
	_ "go.trai.ch/rig/internal/adapters/logger"
	_ "go.trai.ch/rig/internal/adapters/metrics"
	_ "go.trai.ch/rig/internal/adapters/output"
	_ "go.trai.ch/rig/internal/adapters/render"
	_ "go.trai.ch/rig/internal/adapters/shell"
	_ "go.trai.ch/rig/internal/adapters/telemetry"
	_ "go.trai.ch/rig/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/rig/internal/app"
	_ "go.trai.ch/rig/internal/engine/executor"
	_ "go.trai.ch/rig/internal/engine/requirement"
	_ "go.trai.ch/rig/internal/engine/resolver"
)
