package report

import (
	"strings"

	"github.com/linecard/fnaudit/internal/util"
	"github.com/linecard/fnaudit/pkg/convention/inventory"
)

type Match struct {
	Repository string              `json:"repository"`
	Version    any                 `json:"version"`
	Function   *inventory.Function `json:"function,omitempty"`
}

func (m Match) Found() bool {
	return m.Function != nil
}

// Join pairs each repository with the first function whose name contains the
// repository name. First-match follows the order of functions, so when several
// names share the substring the earliest listed wins. Repositories are visited
// in sorted order.
func Join(functions []inventory.Function, versions map[string]any) []Match {
	matches := make([]Match, 0, len(versions))

	for _, repo := range util.SortedKeys(versions) {
		match := Match{
			Repository: repo,
			Version:    versions[repo],
		}

		if i := FirstContaining(functions, repo); i >= 0 {
			function := functions[i]
			match.Function = &function
		}

		matches = append(matches, match)
	}

	return matches
}

// FirstContaining returns the index of the first function whose name contains substr, or -1.
func FirstContaining(functions []inventory.Function, substr string) int {
	for i, function := range functions {
		if strings.Contains(function.Name, substr) {
			return i
		}
	}
	return -1
}
