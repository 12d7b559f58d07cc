// Package report renders tracker state as an Excel workbook.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/me-learn/tracker/internal/catalog"
	"github.com/me-learn/tracker/internal/tracker"
)

const (
	leaderboardSheet = "Leaderboard"
	progressSheet    = "Progress"
)

// WriteWorkbook writes a workbook with a leaderboard sheet and a per-course
// progress sheet to w.
func WriteWorkbook(w io.Writer, entries []tracker.LeaderboardEntry, courses []catalog.Course) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leaderboardSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeLeaderboard(f, entries); err != nil {
		return err
	}
	if err := writeProgress(f, courses); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeLeaderboard(f *excelize.File, entries []tracker.LeaderboardEntry) error {
	header := []any{"Rank", "Username", "Points", "Level", "Streak (days)"}
	if err := f.SetSheetRow(leaderboardSheet, "A1", &header); err != nil {
		return fmt.Errorf("write leaderboard header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("leaderboard row %d: %w", i, err)
		}
		row := []any{e.Rank, e.Username, e.TotalPoints, e.Level, e.Streak}
		if err := f.SetSheetRow(leaderboardSheet, cell, &row); err != nil {
			return fmt.Errorf("write leaderboard row %d: %w", i, err)
		}
	}
	return nil
}

func writeProgress(f *excelize.File, courses []catalog.Course) error {
	if _, err := f.NewSheet(progressSheet); err != nil {
		return fmt.Errorf("create progress sheet: %w", err)
	}

	header := []any{"Course", "Progress %", "Quiz Score", "Completed"}
	if err := f.SetSheetRow(progressSheet, "A1", &header); err != nil {
		return fmt.Errorf("write progress header: %w", err)
	}

	for i, c := range courses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("progress row %d: %w", i, err)
		}
		score := fmt.Sprintf("%d/%d", c.QuizScore, len(c.Quizzes))
		row := []any{c.Title, c.Progress, score, c.Completed}
		if err := f.SetSheetRow(progressSheet, cell, &row); err != nil {
			return fmt.Errorf("write progress row %d: %w", i, err)
		}
	}
	return nil
}
