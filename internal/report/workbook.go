package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/preston-bernstein/nba-shooting-stats/internal/domain/shots"
	"github.com/preston-bernstein/nba-shooting-stats/internal/stats"
)

// PlayersSheet holds every aggregate ordered by player id.
const PlayersSheet = "Players"

// sheetNames maps views to worksheet names (Excel caps names at 31 characters).
var sheetNames = map[stats.ViewKind]string{
	stats.ViewTopScorers:     "Top Scorers",
	stats.ViewTopFieldGoals:  "Top Field Goals",
	stats.ViewMostMissed:     "Most Missed FGA",
	stats.ViewTopThreePoint:  "Top 3PT Shooters",
	stats.ViewWorstQualified: "Worst Shooters",
}

// SheetName returns the worksheet used for a view.
func SheetName(kind stats.ViewKind) string {
	if name, ok := sheetNames[kind]; ok {
		return name
	}
	return string(kind)
}

// WriteWorkbook exports the report to an XLSX file: one sheet per view in
// presentation order, then the full player list.
func WriteWorkbook(path string, rep stats.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("workbook header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, v := range rep.Views {
		name := SheetName(v.Kind)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, v.Players, headerStyle); err != nil {
			return err
		}
	}

	if len(rep.Views) == 0 {
		if err := f.SetSheetName(defaultSheet, PlayersSheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := f.NewSheet(PlayersSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", PlayersSheet, err)
	}
	if err := writeSheet(f, PlayersSheet, rep.Players, headerStyle); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, players []shots.PlayerAggregate, headerStyle int) error {
	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(Headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}

	for i, p := range players {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := cells(p)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 26); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
