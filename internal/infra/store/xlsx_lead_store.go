package store

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/leads-portal/internal/entity"
)

// XLSXLeadStore keeps the lead table in one sheet of an xlsx workbook,
// the same shape the portal has always used. Reads self-heal: a
// missing file, missing sheet or unreadable workbook yields an empty
// table. Writes go to a temp file that is renamed over the original,
// so a failed save leaves the previous table intact.
type XLSXLeadStore struct {
	Path  string
	Sheet string
	Log   *logrus.Logger
}

func NewXLSXLeadStore(path string, log *logrus.Logger) *XLSXLeadStore {
	return &XLSXLeadStore{Path: path, Sheet: LeadSheet, Log: log}
}

func (s *XLSXLeadStore) Load() ([]entity.Lead, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return []entity.Lead{}, nil
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		if s.Log != nil {
			s.Log.WithField("path", s.Path).Warn("lead workbook unreadable, starting from an empty table: ", err)
		}
		return []entity.Lead{}, nil
	}
	defer f.Close()

	rows, err := f.GetRows(s.Sheet)
	if err != nil || len(rows) == 0 {
		// Sheet missing or empty; both mean no leads yet.
		return []entity.Lead{}, nil
	}

	// Header by name, not position: a column missing from the file is
	// backfilled with the empty string.
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[name] = i
	}

	table := make([]entity.Lead, 0, len(rows)-1)
	for _, row := range rows[1:] {
		get := func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		lead := leadFromValues(get)
		if isEmptyLead(lead) {
			continue
		}
		if lead.ID == "" {
			lead.ID = uuid.New().String()
		}
		table = append(table, lead)
	}
	return table, nil
}

func (s *XLSXLeadStore) Save(table []entity.Lead) error {
	var f *excelize.File
	fresh := false

	if _, err := os.Stat(s.Path); err == nil {
		if f, err = excelize.OpenFile(s.Path); err != nil {
			return fmt.Errorf("open workbook %s: %w", s.Path, err)
		}
	} else {
		f = excelize.NewFile()
		fresh = true
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(s.Sheet)
	if err != nil {
		return fmt.Errorf("locate sheet %s: %w", s.Sheet, err)
	}
	if idx < 0 {
		if idx, err = f.NewSheet(s.Sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.Sheet, err)
		}
	}
	f.SetActiveSheet(idx)
	if fresh && s.Sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	// Rows left over from a previously longer table must go, or a
	// delete would resurrect on the next load.
	if old, err := f.GetRows(s.Sheet); err == nil {
		for row := len(old); row > len(table)+1; row-- {
			if err := f.RemoveRow(s.Sheet, row); err != nil {
				return fmt.Errorf("trim stale row %d: %w", row, err)
			}
		}
	}

	for col, name := range leadColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.Sheet, cell, name); err != nil {
			return err
		}
	}
	for r, lead := range table {
		for col, value := range leadValues(lead) {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.Sheet, cell, value); err != nil {
				return err
			}
		}
	}

	tmp := s.Path + ".tmp.xlsx"
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("write workbook %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace workbook %s: %w", s.Path, err)
	}
	return nil
}

func isEmptyLead(l entity.Lead) bool {
	for _, v := range leadValues(l) {
		if v != "" {
			return false
		}
	}
	return true
}
