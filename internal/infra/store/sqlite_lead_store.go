package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/xavierca1/leads-portal/internal/entity"
)

// SQLiteLeadStore is the indexed alternative to the workbook, behind
// the same load/replace contract. The full-table replace runs inside a
// transaction, which gives the same all-or-nothing durability the
// workbook gets from its rename.
type SQLiteLeadStore struct {
	DB *sql.DB
}

func NewSQLiteLeadStore(dsn string) (*SQLiteLeadStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// A single writer at a time; the Leads facade serializes anyway.
	db.SetMaxOpenConns(1)

	s := &SQLiteLeadStore{DB: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteLeadStore) migrate() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS leads (
			id                  TEXT PRIMARY KEY,
			customer_name       TEXT NOT NULL DEFAULT '',
			mobile_number       TEXT NOT NULL DEFAULT '',
			business_name       TEXT NOT NULL DEFAULT '',
			business_type       TEXT NOT NULL DEFAULT '',
			region              TEXT NOT NULL DEFAULT '',
			city                TEXT NOT NULL DEFAULT '',
			lead_source         TEXT NOT NULL DEFAULT '',
			call_status         TEXT NOT NULL DEFAULT '',
			tax_registered      TEXT NOT NULL DEFAULT '',
			feedback            TEXT NOT NULL DEFAULT '',
			disqualified_reason TEXT NOT NULL DEFAULT '',
			comment             TEXT NOT NULL DEFAULT '',
			assigned_agent      TEXT NOT NULL DEFAULT '',
			date                TEXT NOT NULL DEFAULT '',
			position            INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate leads table: %w", err)
	}
	return nil
}

func (s *SQLiteLeadStore) Load() ([]entity.Lead, error) {
	rows, err := s.DB.Query(`
		SELECT id, customer_name, mobile_number, business_name, business_type,
		       region, city, lead_source, call_status, tax_registered,
		       feedback, disqualified_reason, comment, assigned_agent, date
		FROM leads ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("load leads: %w", err)
	}
	defer rows.Close()

	table := make([]entity.Lead, 0)
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID, &l.CustomerName, &l.MobileNumber, &l.BusinessName, &l.BusinessType,
			&l.Region, &l.City, &l.LeadSource, &l.CallStatus, &l.TaxRegistered,
			&l.Feedback, &l.DisqualifiedReason, &l.Comment, &l.AssignedAgent, &l.Date,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		table = append(table, l)
	}
	return table, rows.Err()
}

func (s *SQLiteLeadStore) Save(table []entity.Lead) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM leads`); err != nil {
		return fmt.Errorf("clear leads: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO leads (
			id, customer_name, mobile_number, business_name, business_type,
			region, city, lead_source, call_status, tax_registered,
			feedback, disqualified_reason, comment, assigned_agent, date, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range table {
		if _, err := stmt.Exec(
			l.ID, l.CustomerName, l.MobileNumber, l.BusinessName, l.BusinessType,
			l.Region, l.City, l.LeadSource, l.CallStatus, l.TaxRegistered,
			l.Feedback, l.DisqualifiedReason, l.Comment, l.AssignedAgent, l.Date, i,
		); err != nil {
			return fmt.Errorf("insert lead %s: %w", l.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteLeadStore) Close() error {
	return s.DB.Close()
}
