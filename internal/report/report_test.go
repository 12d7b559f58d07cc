package report_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/me-learn/tracker/internal/catalog"
	"github.com/me-learn/tracker/internal/report"
	"github.com/me-learn/tracker/internal/tracker"
)

func TestWriteWorkbook(t *testing.T) {
	entries := []tracker.LeaderboardEntry{
		{Rank: 1, Username: "Alice", TotalPoints: 2500, Level: 3, Streak: 14},
		{Rank: 2, Username: "dana", TotalPoints: 1900, Level: 2, Streak: 5, You: true},
	}
	courses := []catalog.Course{
		{ID: 1, Title: "Go Basics", Progress: 100, QuizScore: 2, Completed: true,
			Quizzes: make([]catalog.QuizQuestion, 2)},
		{ID: 2, Title: "SQL Basics", Progress: 40, QuizScore: 0,
			Quizzes: make([]catalog.QuizQuestion, 3)},
	}

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, entries, courses); err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Leaderboard" || sheets[1] != "Progress" {
		t.Fatalf("sheets = %v, want [Leaderboard Progress]", sheets)
	}

	cellChecks := []struct {
		sheet, cell, want string
	}{
		{"Leaderboard", "A1", "Rank"},
		{"Leaderboard", "B1", "Username"},
		{"Leaderboard", "B2", "Alice"},
		{"Leaderboard", "C2", "2500"},
		{"Leaderboard", "B3", "dana"},
		{"Leaderboard", "E3", "5"},
		{"Progress", "A1", "Course"},
		{"Progress", "A2", "Go Basics"},
		{"Progress", "B2", "100"},
		{"Progress", "C2", "2/2"},
		{"Progress", "D2", "TRUE"},
		{"Progress", "C3", "0/3"},
	}
	for _, tt := range cellChecks {
		got, err := f.GetCellValue(tt.sheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s) error = %v", tt.sheet, tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}

func TestWriteWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, nil, nil); err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Leaderboard", "A1")
	if err != nil {
		t.Fatalf("GetCellValue() error = %v", err)
	}
	if got != "Rank" {
		t.Errorf("A1 = %q, want header row even with no entries", got)
	}
}
