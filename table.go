package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type column struct {
	title string
	align text.Align
}

var (
	resultColumns = []column{
		{"ID", text.AlignLeft},
		{"Title", text.AlignLeft},
		{"Year", text.AlignRight},
		{"Rating", text.AlignRight},
		{"Genres", text.AlignLeft},
		{"Qualities", text.AlignLeft},
	}
	torrentColumns = []column{
		{"Field", text.AlignLeft},
		{"Value", text.AlignLeft},
	}
)

// renderTable draws rows under cols. Short rows are padded, extra cells dropped.
func renderTable(cols []column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(cols))
	configs := make([]table.ColumnConfig, 0, len(cols))
	for i, c := range cols {
		header = append(header, c.title)
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       c.align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(cols))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}
