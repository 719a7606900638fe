package state

import "math"

// ZoomStage is the automatic zoom-out progression after a focus.
type ZoomStage int

const (
	StageNone ZoomStage = iota
	StageFocused
	StageIntermediate
)

func (s ZoomStage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageFocused:
		return "focused"
	case StageIntermediate:
		return "intermediate"
	default:
		return "unknown"
	}
}

// Transition is the result of feeding distance to ZoomStages.
type Transition int

const (
	NoTransition   Transition = iota
	ToIntermediate            // Scale to the intermediate zoom, clear the active tile
	ToNone                    // Zoom out fully
)

// ZoomStages tracks the current stage and the pan distance accrued since the
// last transition or focus.
type ZoomStages struct {
	First  float64 // Distance to leave Focused
	Second float64 // Distance to leave Intermediate

	stage    ZoomStage
	distance float64
}

// NewZoomStages creates a machine in StageNone.
func NewZoomStages(first, second float64) *ZoomStages {
	return &ZoomStages{First: first, Second: second}
}

// Stage returns the current stage.
func (z *ZoomStages) Stage() ZoomStage { return z.stage }

// Distance returns the distance accrued in the current stage.
func (z *ZoomStages) Distance() float64 { return z.distance }

// Progress returns the fraction of the current stage's threshold already
// covered, in [0, 1]. It is 0 in StageNone.
func (z *ZoomStages) Progress() float64 {
	var limit float64
	switch z.stage {
	case StageFocused:
		limit = z.First
	case StageIntermediate:
		limit = z.Second
	default:
		return 0
	}
	if !(limit > 0) {
		return 1
	}
	return math.Min(z.distance/limit, 1)
}

// Focus enters StageFocused from any stage.
func (z *ZoomStages) Focus() {
	z.stage = StageFocused
	z.distance = 0
}

// Reset returns to StageNone.
func (z *ZoomStages) Reset() {
	z.stage = StageNone
	z.distance = 0
}

// Accumulate adds pan distance. Thresholds are inclusive. Distance is ignored
// in StageNone.
func (z *ZoomStages) Accumulate(d float64) Transition {
	if z.stage == StageNone || !(d > 0) {
		return NoTransition
	}
	z.distance += d

	switch z.stage {
	case StageFocused:
		if z.distance >= z.First {
			z.stage = StageIntermediate
			z.distance = 0
			return ToIntermediate
		}
	case StageIntermediate:
		if z.distance >= z.Second {
			z.stage = StageNone
			z.distance = 0
			return ToNone
		}
	}
	return NoTransition
}
