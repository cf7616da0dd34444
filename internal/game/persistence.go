package game

import (
	"context"
	"errors"

	"github.com/vovakirdan/autoscroller/internal/storage"
)

// ScoreStore is the highscore collaborator. *storage.Store satisfies it.
type ScoreStore interface {
	Top(ctx context.Context, limit int) ([]storage.HighScore, error)
	Submit(ctx context.Context, name string, score int) (int64, error)
}

var (
	// ErrNotGameOver is returned when submitting outside the game-over screen.
	ErrNotGameOver = errors.New("game: score can only be submitted after game over")
	// ErrAlreadySubmitted is returned for a second submit of the same run.
	ErrAlreadySubmitted = errors.New("game: score already submitted")
	// ErrNoStore is returned when no highscore store is configured.
	ErrNoStore = errors.New("game: no highscore store")
)

// HasStore reports whether scores can be submitted.
func (g *Game) HasStore() bool {
	return g.store != nil
}

// RefreshLeaderboard reloads the top scores for the menu. Failures set the
// persistence flag and keep the previous board.
func (g *Game) RefreshLeaderboard(ctx context.Context) {
	if g.store == nil {
		return
	}
	scores, err := g.store.Top(ctx, storage.DefaultLimit)
	if err != nil {
		g.persistenceFailed = true
		g.log.Warn("leaderboard unavailable", "err", err)
		return
	}
	g.persistenceFailed = false
	g.leaderboard = scores
}

// SubmitScore records the finished run under name. It is only valid once per
// run, after game over. Store failures set the persistence flag.
func (g *Game) SubmitScore(ctx context.Context, name string) error {
	if g.state != StateGameOver {
		return ErrNotGameOver
	}
	if g.submitted {
		return ErrAlreadySubmitted
	}
	if g.store == nil {
		return ErrNoStore
	}
	if _, err := g.store.Submit(ctx, name, g.score); err != nil {
		if errors.Is(err, storage.ErrInvalidName) {
			return err
		}
		g.persistenceFailed = true
		g.log.Warn("score submit failed", "name", name, "score", g.score, "err", err)
		return err
	}
	g.submitted = true
	g.persistenceFailed = false
	g.log.Info("score submitted", "name", name, "score", g.score)
	g.RefreshLeaderboard(ctx)
	return nil
}
