package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel cost values recorded in place of a real search cost, per
// spec §6: -1 marks a timeout, -2 marks no-solution-within-bound.
const (
	SentinelTimeout    = -1
	SentinelNoSolution = -2
)

// resultsHeader is the fixed header row for the results CSV, per spec §6.
var resultsHeader = []string{"instance_id", "degradation", "bound", "h_cost", "h_expanded", "p_cost", "p_expanded"}

// ResultRecord is one row of the results CSV: the outcome of both the
// pure-heuristic ("h_") and ratio-driven ("p_") Potential Search arms for
// one (instance, degradation, bound) triple.
type ResultRecord struct {
	InstanceID  int
	Degradation float64
	BoundLabel  string
	HCost       int
	HExpanded   int
	PCost       int
	PExpanded   int
}

// WriteResultsHeader writes the results CSV header row to w.
func WriteResultsHeader(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultsHeader); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// AppendResult appends one results CSV row to w.
func AppendResult(w io.Writer, rec ResultRecord) error {
	cw := csv.NewWriter(w)
	row := []string{
		strconv.Itoa(rec.InstanceID),
		formatDegradation(rec.Degradation),
		rec.BoundLabel,
		strconv.Itoa(rec.HCost),
		strconv.Itoa(rec.HExpanded),
		strconv.Itoa(rec.PCost),
		strconv.Itoa(rec.PExpanded),
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// FormatDegradation renders a degradation value the way Python's
// str(float) would for the half-integer sweep {0, 0.5, 1, 1.5, 2}: no
// trailing zeros beyond one decimal place, matching the upstream CSV's
// "0", "0.5", "1", "1.5", "2" style. Exported so callers (e.g. the
// analyze CLI) can key into Breakdown's per-degradation tables without
// reimplementing the formatting rule.
func FormatDegradation(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

func formatDegradation(d float64) string { return FormatDegradation(d) }

// ReadResults parses a results CSV (header plus body rows) from r into
// ResultRecord values, in file order.
func ReadResults(r io.Reader) ([]ResultRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 7
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if !equalHeader(rows[0], resultsHeader) {
		return nil, fmt.Errorf("%w: unexpected results header %v", ErrMalformedRecord, rows[0])
	}

	out := make([]ResultRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, err := parseResultRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseResultRow(row []string) (ResultRecord, error) {
	var rec ResultRecord
	var err error

	if rec.InstanceID, err = strconv.Atoi(strings.TrimSpace(row[0])); err != nil {
		return rec, fmt.Errorf("%w: bad instance_id %q", ErrMalformedRecord, row[0])
	}
	if rec.Degradation, err = strconv.ParseFloat(strings.TrimSpace(row[1]), 64); err != nil {
		return rec, fmt.Errorf("%w: bad degradation %q", ErrMalformedRecord, row[1])
	}
	rec.BoundLabel = row[2]
	if rec.HCost, err = strconv.Atoi(strings.TrimSpace(row[3])); err != nil {
		return rec, fmt.Errorf("%w: bad h_cost %q", ErrMalformedRecord, row[3])
	}
	if rec.HExpanded, err = strconv.Atoi(strings.TrimSpace(row[4])); err != nil {
		return rec, fmt.Errorf("%w: bad h_expanded %q", ErrMalformedRecord, row[4])
	}
	if rec.PCost, err = strconv.Atoi(strings.TrimSpace(row[5])); err != nil {
		return rec, fmt.Errorf("%w: bad p_cost %q", ErrMalformedRecord, row[5])
	}
	if rec.PExpanded, err = strconv.Atoi(strings.TrimSpace(row[6])); err != nil {
		return rec, fmt.Errorf("%w: bad p_expanded %q", ErrMalformedRecord, row[6])
	}
	return rec, nil
}
