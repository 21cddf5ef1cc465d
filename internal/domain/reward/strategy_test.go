package reward

import "testing"

func TestStandard_Calculate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		score int
		want  int
	}{
		{name: "above threshold", score: 101, want: 50},
		{name: "well above threshold", score: 500, want: 50},
		{name: "exactly threshold stays in lower tier", score: 100, want: 10},
		{name: "below threshold", score: 99, want: 10},
		{name: "zero", score: 0, want: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.score, Standard{}); got != tc.want {
				t.Fatalf("Standard reward for %d = %d, want %d", tc.score, got, tc.want)
			}
		})
	}
}

func TestVIP_Calculate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		score int
		want  int
	}{
		{name: "above threshold", score: 101, want: 100},
		{name: "exactly threshold stays in lower tier", score: 100, want: 30},
		{name: "below threshold", score: 12, want: 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.score, VIP{}); got != tc.want {
				t.Fatalf("VIP reward for %d = %d, want %d", tc.score, got, tc.want)
			}
		})
	}
}

func TestApply_ForwardsToSuppliedStrategy(t *testing.T) {
	t.Parallel()

	doubling := strategyFunc(func(score int) int { return score * 2 })
	if got := Apply(21, doubling); got != 42 {
		t.Fatalf("Apply with custom strategy = %d, want 42", got)
	}
}

type strategyFunc func(int) int

func (f strategyFunc) Calculate(score int) int {
	return f(score)
}
