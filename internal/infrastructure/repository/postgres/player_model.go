package postgres

import "time"

type playerTableModel struct {
	ID        int64      `db:"id"`
	Nickname  string     `db:"nickname"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type playerStatsTableModel struct {
	ID          int64      `db:"id"`
	PlayerID    int64      `db:"player_id"`
	GamesPlayed int        `db:"games_played"`
	Wins        int        `db:"wins"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
