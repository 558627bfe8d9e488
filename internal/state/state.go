// Package state is the sqlite-backed trace store used by the CLI layer to
// record agent cycles. The core never touches it.
package state

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"chaos-v0/internal/agent"
)

type DB struct{ *sql.DB }

func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{DB: db}, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS cycles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			agent_id TEXT NOT NULL,
			agent_name TEXT NOT NULL,
			created_at TEXT NOT NULL,
			action_kind TEXT NOT NULL,
			top_emotion TEXT NOT NULL,
			dream_count INTEGER NOT NULL,
			log_size INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_agent ON cycles(agent_id);`,
		`CREATE TABLE IF NOT EXISTS dreams (
			cycle_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			content TEXT NOT NULL,
			PRIMARY KEY(cycle_id, position)
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// CycleRow is one recorded agent cycle.
type CycleRow struct {
	ID         int64
	AgentID    string
	AgentName  string
	CreatedAt  string
	ActionKind string
	TopEmotion string
	DreamCount int
	LogSize    int
}

// RecordCycle persists a cycle report and its dreams.
func (d *DB) RecordCycle(agentID, agentName string, r *agent.Report) (int64, error) {
	actionKind := ""
	if r.Action != nil {
		actionKind = string(r.Action.Kind)
	}
	topEmotion := ""
	if n := len(r.Emotions); n > 0 {
		topEmotion = r.Emotions[n-1].Name
	}
	res, err := d.Exec(
		`INSERT INTO cycles(agent_id, agent_name, created_at, action_kind, top_emotion, dream_count, log_size)
         VALUES(?,?,?,?,?,?,?)`,
		agentID, agentName, time.Now().Format(time.RFC3339),
		actionKind, topEmotion, len(r.Dreams), len(r.Log),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for i, dream := range r.Dreams {
		if _, err := d.Exec(
			`INSERT INTO dreams(cycle_id, position, content) VALUES(?,?,?)`,
			id, i, dream,
		); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Dreams returns the recorded dreams of one cycle in position order.
func (d *DB) Dreams(cycleID int64) ([]string, error) {
	rows, err := d.Query(
		`SELECT content FROM dreams WHERE cycle_id = ? ORDER BY position`, cycleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// RecentCycles returns the newest n cycles of an agent, newest first.
func (d *DB) RecentCycles(agentID string, n int) ([]CycleRow, error) {
	rows, err := d.Query(
		`SELECT id, agent_id, agent_name, created_at, action_kind, top_emotion, dream_count, log_size
         FROM cycles WHERE agent_id = ? ORDER BY id DESC LIMIT ?`,
		agentID, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CycleRow
	for rows.Next() {
		var c CycleRow
		if err := rows.Scan(&c.ID, &c.AgentID, &c.AgentName, &c.CreatedAt,
			&c.ActionKind, &c.TopEmotion, &c.DreamCount, &c.LogSize); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
