package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mediasweep/internal/catalog"
	"mediasweep/internal/preflight"
	"mediasweep/internal/reconcile"
)

func renderMissingTable(records []catalog.Record) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Type", "Name", "Path"})
	for _, record := range records {
		tw.AppendRow(table.Row{record.ID, record.Type, record.Name, record.Path})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderOutcomeTable(outcomes []reconcile.Outcome) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Result"})
	for _, outcome := range outcomes {
		result := "removed"
		if !outcome.Succeeded() {
			result = "FAILED: " + outcome.Err.Error()
		}
		tw.AppendRow(table.Row{outcome.Record.ID, outcome.Record.Name, result})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderPreflightTable(results []preflight.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Check", "Status", "Detail"})
	for _, result := range results {
		status := "ok"
		if !result.Passed {
			status = "FAIL"
		}
		tw.AppendRow(table.Row{result.Name, status, result.Detail})
	}
	return tw.Render()
}
