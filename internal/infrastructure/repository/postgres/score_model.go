package postgres

import "time"

type scoreTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	PlayerID   int64      `db:"player_id"`
	Points     int        `db:"points"`
	RecordedAt time.Time  `db:"recorded_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type scoreInsertModel struct {
	PublicID   string    `db:"public_id"`
	PlayerID   int64     `db:"player_id"`
	Points     int       `db:"points"`
	RecordedAt time.Time `db:"recorded_at"`
}
