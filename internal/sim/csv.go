package sim

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"demandsim/internal/model"
)

const datetimeLayout = "2006-01-02 15:04:05"

// WriteResults writes desc.txt and data.csv for a completed run into dir.
func WriteResults(dir string, res *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := WriteDescription(filepath.Join(dir, "desc.txt"), res.Description); err != nil {
		return err
	}
	return WriteRowsCSV(filepath.Join(dir, "data.csv"), res.Rows)
}

// WriteDescription writes the run parameters as key=value lines.
func WriteDescription(path string, desc model.RunDescription) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	lines := []string{
		fmt.Sprintf("startingDatetime=%s", desc.StartingDatetime.Format(datetimeLayout)),
		fmt.Sprintf("simulationLength=%d", desc.SimulationLength),
		fmt.Sprintf("houseCount=%d", desc.HouseCount),
		fmt.Sprintf("lowerPrice=%g", desc.LowerPrice),
		fmt.Sprintf("higherPrice=%g", desc.HigherPrice),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteRowsCSV writes the per-interval result table.
func WriteRowsCSV(path string, rows []model.ResultRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"Datetime",
		"PredictedBaseDemand",
		"ActualBaseDemand",
		"TargetDemand",
		"SmartDemand",
		"UncontrolledDemand",
		"SpreadOutDemand",
		"PriceRatio",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		rec := []string{
			fmtTime(r.Datetime),
			fmtFloat(r.PredictedBaseDemand),
			fmtFloat(r.ActualBaseDemand),
			fmtFloat(r.TargetDemand),
			fmtFloat(r.SmartDemand),
			fmtFloat(r.UncontrolledDemand),
			fmtFloat(r.SpreadOutDemand),
			fmtFloat(r.PriceRatio),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtTime(t time.Time) string {
	return t.Format(datetimeLayout)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 5, 64)
}
