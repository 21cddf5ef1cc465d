package player

// Scorer exposes a single best-score reading. Consumers that only need a
// score accept this and nothing wider.
type Scorer interface {
	Score() int
}

// Profiled exposes a display name, independent of scoring.
type Profiled interface {
	Nickname() string
}

// Member is a registered player with both an identity and a score.
type Member struct {
	Profile   Profile
	BestScore int
}

func (m Member) Score() int {
	return m.BestScore
}

func (m Member) Nickname() string {
	return m.Profile.Nickname
}

// Guest plays without registering, so it carries a score and no identity.
type Guest struct {
	BestScore int
}

func (g Guest) Score() int {
	return g.BestScore
}
