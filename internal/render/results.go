package render

import (
	"fmt"
	"sort"

	"github.com/umalmyha/customer-search/internal/model"
	"github.com/umalmyha/customer-search/internal/search"
	"github.com/umalmyha/customer-search/internal/searchcfg"
)

const (
	loadingMessage = "Searching for customers..."
	promptMessage  = "Enter search criteria above to find customers"
	emptyMessage   = "No customers found"
	emptyHint      = "Try adjusting your search criteria"
)

// ViewKind is which of mutually exclusive results views is shown
type ViewKind int

const (
	ViewLoading ViewKind = iota
	ViewError
	ViewPrompt
	ViewEmpty
	ViewTable
)

// Column is results table header
type Column struct {
	Key   string
	Label string
}

// ResultsView is results area ready to be rendered
type ResultsView struct {
	Kind    ViewKind
	Message string
	Hint    string
	Caption string
	Columns []Column
	Rows    [][]string
}

func (v ResultsView) IsLoading() bool { return v.Kind == ViewLoading }
func (v ResultsView) IsError() bool   { return v.Kind == ViewError }
func (v ResultsView) IsPrompt() bool  { return v.Kind == ViewPrompt }
func (v ResultsView) IsEmpty() bool   { return v.Kind == ViewEmpty }
func (v ResultsView) IsTable() bool   { return v.Kind == ViewTable }

// Results picks view matching orchestrator state. Table cells are produced by column formatters.
func Results(st search.State, fields []model.ResultFieldConfig) ResultsView {
	switch {
	case st.Phase == search.PhaseSearching:
		return ResultsView{Kind: ViewLoading, Message: loadingMessage}
	case st.Phase == search.PhaseFailed:
		return ResultsView{Kind: ViewError, Message: st.Error}
	case !st.HasSearched:
		return ResultsView{Kind: ViewPrompt, Message: promptMessage}
	case len(st.Results) == 0:
		return ResultsView{Kind: ViewEmpty, Message: emptyMessage, Hint: emptyHint}
	}

	columns := sortedColumns(fields)
	view := ResultsView{
		Kind:    ViewTable,
		Caption: caption(len(st.Results)),
		Columns: make([]Column, 0, len(columns)),
		Rows:    make([][]string, 0, len(st.Results)),
	}

	for _, c := range columns {
		view.Columns = append(view.Columns, Column{Key: c.Key, Label: c.Label})
	}

	for i := range st.Results {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, searchcfg.Format(c.Key, &st.Results[i]))
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func caption(n int) string {
	if n == 1 {
		return "Found 1 customer"
	}
	return fmt.Sprintf("Found %d customers", n)
}

func sortedColumns(fields []model.ResultFieldConfig) []model.ResultFieldConfig {
	res := append(make([]model.ResultFieldConfig, 0, len(fields)), fields...)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].RenderOrder < res[j].RenderOrder
	})
	return res
}
