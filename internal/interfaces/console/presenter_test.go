package console

import (
	"strings"
	"testing"

	"github.com/riskibarqy/scoreboard/internal/domain/player"
	"github.com/riskibarqy/scoreboard/internal/domain/score"
)

func TestPresenter_PresentScores_EmptyInputWritesNothing(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	NewPresenter(&buf).PresentScores(nil)

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPresenter_PresentScores_OneLinePerEntryInOrder(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	NewPresenter(&buf).PresentScores([]score.Score{
		{PlayerID: 42, Points: 120},
		{PlayerID: 42, Points: 95},
		{PlayerID: 7, Points: 0},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	want := []string{
		"Player 42 - Score: 120",
		"Player 42 - Score: 95",
		"Player 7 - Score: 0",
	}
	for i, line := range lines {
		if line != want[i] {
			t.Fatalf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestShowScore_AcceptsAnyScorer(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ShowScore(&buf, player.Member{Profile: player.Profile{ID: 42, Nickname: "arcade-ace"}, BestScore: 120})
	ShowScore(&buf, player.Guest{BestScore: 55})

	got := buf.String()
	if got != "Score: 120\nScore: 55\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestShowNickname_OnlyNeedsProfiled(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ShowNickname(&buf, player.Member{Profile: player.Profile{ID: 42, Nickname: "arcade-ace"}})

	if buf.String() != "Nickname: arcade-ace\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
