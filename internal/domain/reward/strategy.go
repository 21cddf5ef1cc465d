package reward

// Threshold separates the lower and upper reward tiers. A score of exactly
// Threshold is "not greater than" and stays in the lower tier.
const Threshold = 100

// Strategy maps a score to a reward amount. Implementations must be
// deterministic and never return a negative reward.
type Strategy interface {
	Calculate(score int) int
}

// Standard is the default reward policy.
type Standard struct{}

func (Standard) Calculate(score int) int {
	if score > Threshold {
		return 50
	}
	return 10
}

// VIP rewards the same thresholds at elevated amounts.
type VIP struct{}

func (VIP) Calculate(score int) int {
	if score > Threshold {
		return 100
	}
	return 30
}

// Apply forwards to the supplied strategy. Adding a reward tier means adding
// a Strategy variant; this function never changes.
func Apply(score int, strategy Strategy) int {
	return strategy.Calculate(score)
}
