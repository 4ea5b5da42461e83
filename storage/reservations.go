package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// CachedReservation is a locally synced copy of a backend reservation,
// kept for offline listing. The backend owns the lifecycle; rows here
// are refreshed by `condo reservations sync`.
type CachedReservation struct {
	ID        string  `json:"id"`
	AreaID    string  `json:"area_id"`
	AreaName  string  `json:"area_name"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	People    int     `json:"people"`
	Status    string  `json:"status"`
	Cost      float64 `json:"cost"`
	Notes     string  `json:"notes"`
	SyncedAt  string  `json:"synced_at"`
	Source    string  `json:"source"`
}

type ReservationFilter struct {
	From     string
	To       string
	Status   string
	Past     bool
	Upcoming bool
	NowDate  string
	NowTime  string
}

func OpenReservationsDB() (*sql.DB, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := ReservationsPath()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := ensureReservationsSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func ensureReservationsSchema(db *sql.DB) error {
	createTable := `
CREATE TABLE IF NOT EXISTS reservations (
  id TEXT PRIMARY KEY,
  area_id TEXT,
  area_name TEXT,
  date TEXT,
  start_time TEXT,
  end_time TEXT,
  people INTEGER,
  status TEXT,
  cost REAL,
  notes TEXT,
  synced_at TEXT,
  source TEXT
);`

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create reservations table: %w", err)
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_reservations_date ON reservations(date);"); err != nil {
		return fmt.Errorf("create reservations index: %w", err)
	}

	return nil
}

func AddReservationIfNotExists(db *sql.DB, r CachedReservation) (bool, error) {
	query := `
INSERT OR IGNORE INTO reservations (
  id, area_id, area_name, date, start_time, end_time, people, status, cost, notes, synced_at, source
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	res, err := db.Exec(
		query,
		r.ID,
		r.AreaID,
		r.AreaName,
		r.Date,
		r.StartTime,
		r.EndTime,
		r.People,
		r.Status,
		r.Cost,
		r.Notes,
		r.SyncedAt,
		r.Source,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func UpdateReservationStatus(db *sql.DB, id, status, syncedAt string) (bool, error) {
	res, err := db.Exec("UPDATE reservations SET status = ?, synced_at = ? WHERE id = ?", status, syncedAt, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func RemoveReservation(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec("DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func ListReservations(db *sql.DB, filter ReservationFilter) ([]CachedReservation, error) {
	base := `
SELECT id, area_id, area_name, date, start_time, end_time, people, status, cost, notes, synced_at, source
FROM reservations`

	conds := []string{}
	args := []any{}

	if filter.From != "" {
		conds = append(conds, "date >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		conds = append(conds, "date <= ?")
		args = append(args, filter.To)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.From == "" && filter.To == "" {
		if filter.Past {
			conds = append(conds, "date <= ?")
			args = append(args, filter.NowDate)
		}
		if filter.Upcoming {
			conds = append(conds, "date >= ?")
			args = append(args, filter.NowDate)
		}
	}

	query := base
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date, start_time"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []CachedReservation{}
	for rows.Next() {
		var r CachedReservation
		var cost sql.NullFloat64
		var notes sql.NullString
		if err := rows.Scan(
			&r.ID,
			&r.AreaID,
			&r.AreaName,
			&r.Date,
			&r.StartTime,
			&r.EndTime,
			&r.People,
			&r.Status,
			&cost,
			&notes,
			&r.SyncedAt,
			&r.Source,
		); err != nil {
			return nil, err
		}
		if cost.Valid {
			r.Cost = cost.Float64
		}
		if notes.Valid {
			r.Notes = notes.String
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if filter.From == "" && filter.To == "" {
		if filter.Past || filter.Upcoming {
			return filterByTime(reservations, filter), nil
		}
	}
	return reservations, nil
}

func filterByTime(reservations []CachedReservation, filter ReservationFilter) []CachedReservation {
	filtered := make([]CachedReservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Date != filter.NowDate {
			filtered = append(filtered, r)
			continue
		}
		if filter.NowTime == "" {
			filtered = append(filtered, r)
			continue
		}
		if filter.Past {
			if r.StartTime < filter.NowTime {
				filtered = append(filtered, r)
			}
			continue
		}
		if filter.Upcoming {
			if r.StartTime >= filter.NowTime {
				filtered = append(filtered, r)
			}
		}
	}
	return filtered
}
