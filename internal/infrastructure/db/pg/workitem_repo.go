package pg

import (
	"context"
	"database/sql"

	"sprintassign/internal/domain/workitem"
)

type WorkItemRepository struct {
	db *sql.DB
}

func NewWorkItemRepository(db *sql.DB) *WorkItemRepository {
	return &WorkItemRepository{db: db}
}

func (r *WorkItemRepository) Upsert(ctx context.Context, items []workitem.WorkItem) error {
	for _, it := range items {
		if _, err := exec(ctx, r.db,
			`INSERT INTO work_items (id, title, status, item_type, priority, assigned_to, iteration_path)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO UPDATE
			   SET title = EXCLUDED.title,
			       status = EXCLUDED.status,
			       item_type = EXCLUDED.item_type,
			       priority = EXCLUDED.priority,
			       assigned_to = EXCLUDED.assigned_to,
			       iteration_path = EXCLUDED.iteration_path,
			       updated_at = NOW()`,
			it.ID, it.Title, it.Status, it.Type, it.Priority, it.AssignedTo, it.IterationPath,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *WorkItemRepository) ListByIteration(ctx context.Context, iterationPath string) ([]workitem.WorkItem, error) {
	rows, err := query(ctx, r.db,
		`SELECT id, title, status, item_type, priority, assigned_to, iteration_path
		   FROM work_items
		  WHERE iteration_path = $1
		  ORDER BY id`,
		iterationPath,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []workitem.WorkItem
	for rows.Next() {
		var it workitem.WorkItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Status, &it.Type, &it.Priority, &it.AssignedTo, &it.IterationPath); err != nil {
			return nil, err
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

// SetAssignee reports false when no work item has the given id.
func (r *WorkItemRepository) SetAssignee(ctx context.Context, id int, assignee string) (bool, error) {
	res, err := exec(ctx, r.db,
		`UPDATE work_items
		    SET assigned_to = $2,
		        updated_at = NOW()
		  WHERE id = $1`,
		id, assignee,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
