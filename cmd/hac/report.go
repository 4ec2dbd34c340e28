package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// clusterReport is the output of one cluster run.
type clusterReport struct {
	RunID   string       `json:"run_id"`
	Source  string       `json:"source"`
	Leaves  []string     `json:"leaves"`
	Dropped []string     `json:"dropped"`
	Linkage [][4]float64 `json:"linkage"`
	Flat    []int        `json:"flat,omitempty"`
}

func writeReportJSON(w io.Writer, rep clusterReport) error {
	if rep.Leaves == nil {
		rep.Leaves = []string{}
	}
	if rep.Dropped == nil {
		rep.Dropped = []string{}
	}
	if rep.Linkage == nil {
		rep.Linkage = [][4]float64{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// writeReportCSV writes the linkage rows only, one merge per line.
func writeReportCSV(w io.Writer, rep clusterReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"left", "right", "distance", "size"}); err != nil {
		return err
	}
	for _, row := range rep.Linkage {
		rec := []string{
			strconv.Itoa(int(row[0])),
			strconv.Itoa(int(row[1])),
			strconv.FormatFloat(row[2], 'g', -1, 64),
			strconv.Itoa(int(row[3])),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
