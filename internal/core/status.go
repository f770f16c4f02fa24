package core

// Status is the traffic-light classification of a pacing ratio.
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusRed    Status = "red"
)

// Pacing thresholds. At or above green is on track, at or above yellow is
// recoverable, below yellow is behind.
const (
	PacingGreenThreshold  = 0.95
	PacingYellowThreshold = 0.80
)

// PacingStatus maps a pacing ratio to its traffic-light status. It never
// sees targets: a missing target also produces a red status, and consumers
// that want to render "no target set" distinctly must check the target
// field, not the status. ROI is the one metric whose builder special-cases
// the missing target.
func PacingStatus(pacing float64) Status {
	switch {
	case pacing >= PacingGreenThreshold:
		return StatusGreen
	case pacing >= PacingYellowThreshold:
		return StatusYellow
	default:
		return StatusRed
	}
}
