package pipeline

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/metacat/cli/internal/models"
)

// SearchFilter returns the pipelines whose name or display name contains the
// query, case insensitively. The result preserves the order of the input
// list; an empty query returns the list unchanged.
func SearchFilter(pipelines []models.IngestionPipeline, query string) []models.IngestionPipeline {
	if query == "" {
		return pipelines
	}

	query = strings.ToLower(query)
	var matched []models.IngestionPipeline
	for _, p := range pipelines {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.DisplayName), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// SubstringFilter adapts the search semantics above for a bubbles list. The
// default list filter is fuzzy; pipeline search is a plain substring match.
func SubstringFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	var ranks []list.Rank
	for i, t := range targets {
		if strings.Contains(strings.ToLower(t), term) {
			ranks = append(ranks, list.Rank{Index: i})
		}
	}
	return ranks
}
