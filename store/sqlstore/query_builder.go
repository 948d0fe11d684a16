package sqlstore

import (
	"fmt"
	"strings"
)

const taskColumns = `t.id, t.type, t.status, t.title, t.detail, t.remarks, t.ticket_no,
	t.project_id, t.unit_id, t.responsible_id, t.co_responsible, t.progress, t.days_spent,
	t.estimated_days, t.year, t.sort_order, t.user_id, t.created_at, t.updated_at,
	p.name, COALESCE(u.name, ''), COALESCE(r.name, '')`

const taskJoins = `tasks t
	JOIN projects p ON p.id = t.project_id
	LEFT JOIN units u ON u.id = t.unit_id
	LEFT JOIN people r ON r.id = t.responsible_id`

const workLogColumns = `w.id, w.task_id, w.log_date, w.days_worked, w.description, w.user_id, w.created_at,
	t.title, t.type, p.name`

const workLogJoins = `work_logs w
	JOIN tasks t ON t.id = w.task_id
	JOIN projects p ON p.id = t.project_id`

// selectQuery assembles a SELECT with AND-ed filters.
type selectQuery struct {
	columns string
	from    string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func newTaskQuery(userID string) *selectQuery {
	q := &selectQuery{columns: taskColumns, from: taskJoins}
	return q.Where("t.user_id = ?", userID)
}

func newWorkLogQuery(userID string) *selectQuery {
	q := &selectQuery{columns: workLogColumns, from: workLogJoins}
	return q.Where("w.user_id = ?", userID)
}

func (q *selectQuery) Where(filter string, args ...interface{}) *selectQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *selectQuery) OrderBy(orderBy string) *selectQuery {
	q.orderBy = orderBy
	return q
}

func (q *selectQuery) Limit(limit int) *selectQuery {
	q.limit = limit
	return q
}

func (q *selectQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s", q.columns, q.from)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
