package cmd

import (
	"fmt"
)

// HistoryListCmd prints recent searches
type HistoryListCmd struct{}

func (h *HistoryListCmd) Run() error {
	hist, closeHistory, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = closeHistory() }()

	entries := hist.List()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(stdout, "No recent searches.")
		return nil
	}
	for i, q := range entries {
		_, _ = fmt.Fprintf(stdout, "%d. %s\n", i+1, q)
	}
	return nil
}

// HistoryClearCmd forgets recent searches
type HistoryClearCmd struct{}

func (h *HistoryClearCmd) Run() error {
	hist, closeHistory, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = closeHistory() }()

	if err := hist.Clear(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(stdout, "Search history cleared.")
	return nil
}
