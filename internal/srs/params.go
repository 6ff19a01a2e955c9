package srs

// Params holds the tunable bounds, bonuses, and penalties for the
// scheduler. Zero values are not meaningful; use DefaultParams as the
// starting point.
type Params struct {
	// MinEase and MaxEase bound the ease factor.
	MinEase float64
	MaxEase float64

	// EaseBonus is added to the ease factor after a correct answer.
	EaseBonus float64

	// EasePenalty is subtracted from the ease factor after an incorrect
	// answer.
	EasePenalty float64

	// HardPenalty is an extra subtraction applied when a previously
	// well-known question (repetition count > 2) is missed.
	HardPenalty float64

	// MinInterval and MaxInterval bound the review interval in days.
	MinInterval float64
	MaxInterval float64
}

// DefaultParams returns the recommended scheduler tuning.
func DefaultParams() Params {
	return Params{
		MinEase:     1.3,
		MaxEase:     3.0,
		EaseBonus:   0.15,
		EasePenalty: 0.2,
		HardPenalty: 0.15,
		MinInterval: 1.0,
		MaxInterval: 365.0,
	}
}

// Fast-answer bonus applied on correct answers given in under
// fastAnswerSecs seconds.
const (
	fastAnswerSecs     = 5.0
	fastEaseBonus      = 0.05
	fastIntervalFactor = 1.1
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
