package postgres

import (
	"strings"

	"github.com/phrazzld/taskbook-api/internal/store"
)

const taskColumns = `id, title, description, status, deadline, priority, category_id, username, created_at, updated_at`

// buildTaskWhere renders filter as a WHERE clause with '?' placeholders.
// Title matching is a case-sensitive substring test.
func buildTaskWhere(filter store.TaskFilter) (string, []any) {
	conds := []string{"username = ?"}
	args := []any{filter.Owner}

	if filter.Title != nil && *filter.Title != "" {
		conds = append(conds, "strpos(title, ?) > 0")
		args = append(args, *filter.Title)
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}
