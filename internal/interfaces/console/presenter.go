package console

import (
	"fmt"
	"io"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
)

// Presenter renders scores as plain text lines, one per entry, in input
// order. It holds no state beyond the destination writer.
type Presenter struct {
	w io.Writer
}

func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

func (p *Presenter) PresentScores(scores []score.Score) {
	for _, item := range scores {
		fmt.Fprintf(p.w, "Player %d - Score: %d\n", item.PlayerID, item.Points)
	}
}

// ShowScore accepts the narrowest capability it needs: anything that can
// report a score, registered or not.
func ShowScore(w io.Writer, s player.Scorer) {
	fmt.Fprintf(w, "Score: %d\n", s.Score())
}

// ShowNickname is the identity counterpart to ShowScore.
func ShowNickname(w io.Writer, p player.Profiled) {
	fmt.Fprintf(w, "Nickname: %s\n", p.Nickname())
}
