package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// instanceHeader is the fixed header row for the instance-ids CSV, per
// spec §6.
var instanceHeader = []string{"instance_id", "stack", "cost"}

// InstanceRecord is one row of the instance-ids CSV: a generated problem
// instance (its state rendered via the domain State's String(), which is
// already space-separated per tilepuzzle/pancake's String() methods) and
// its true (A*-optimal) cost.
type InstanceRecord struct {
	ID    int
	Stack string
	Cost  int
}

// WriteInstanceHeader writes the instance-ids CSV header row to w.
func WriteInstanceHeader(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(instanceHeader); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// AppendInstance appends one instance-ids CSV row to w: id, stack (a
// pre-rendered space-separated integer string, typically state.String()),
// and the true cost.
func AppendInstance(w io.Writer, id int, stack string, cost int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{strconv.Itoa(id), stack, strconv.Itoa(cost)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ReadInstances parses an instance-ids CSV (header plus body rows) from
// r into InstanceRecord values, in file order.
func ReadInstances(r io.Reader) ([]InstanceRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if !equalHeader(rows[0], instanceHeader) {
		return nil, fmt.Errorf("%w: unexpected instance-ids header %v", ErrMalformedRecord, rows[0])
	}

	out := make([]InstanceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad instance_id %q", ErrMalformedRecord, row[0])
		}
		cost, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad cost %q", ErrMalformedRecord, row[2])
		}
		out = append(out, InstanceRecord{ID: id, Stack: row[1], Cost: cost})
	}
	return out, nil
}

func equalHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
