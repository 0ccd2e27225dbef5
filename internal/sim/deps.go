package sim

import (
	"arena-server/internal/telemetry"
	"arena-server/logging"
)

// Deps bundles the logging/metrics/clock dependencies injected into an
// engine core, decoupling internal/sim from the logging package directly.
type Deps struct {
	Logger  telemetry.Logger
	Metrics telemetry.Metrics
	Clock   logging.Clock
}
