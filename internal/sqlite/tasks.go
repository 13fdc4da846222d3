// Task store: CRUD over the tasks table. Tags are stored as a JSON array
// string and decoded defensively so task data stays viewable even when the
// tags field is corrupt.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/dukaforge/cadence/pkg/types"
)

// TaskStore provides task operations against the owning store's connection.
type TaskStore struct {
	store *Store
}

// List returns all tasks in storage order. Tags always come back as a
// non-nil slice; a NULL, empty, or malformed tags column decodes to an
// empty slice rather than an error.
func (ts *TaskStore) List() ([]types.Task, error) {
	ts.store.mu.Lock()
	defer ts.store.mu.Unlock()

	if !ts.store.open {
		return nil, types.ErrStoreClosed
	}

	rows, err := ts.store.db.Query(
		"SELECT id, title, done, is_today, est_minutes, notes, project, tags, due, created_at FROM tasks",
	)
	if err != nil {
		return nil, storageErr("list tasks", err)
	}
	defer rows.Close()

	tasks := make([]types.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, storageErr("list tasks", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list tasks", err)
	}

	return tasks, nil
}

// Get returns the task with the given id. Returns ErrNotFound if no task
// exists with that id.
func (ts *TaskStore) Get(id string) (types.Task, error) {
	if id == "" {
		return types.Task{}, types.ErrInvalidID
	}

	ts.store.mu.Lock()
	defer ts.store.mu.Unlock()

	if !ts.store.open {
		return types.Task{}, types.ErrStoreClosed
	}

	row := ts.store.db.QueryRow(
		"SELECT id, title, done, is_today, est_minutes, notes, project, tags, due, created_at FROM tasks WHERE id = ?",
		id,
	)
	task, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Task{}, types.ErrNotFound
		}
		return types.Task{}, storageErr("get task", err)
	}
	return task, nil
}

// Save upserts a task by its caller-assigned id. Absent optional fields
// persist as NULL; tags always serialize as a JSON array (empty included).
// created_at is stamped on first insert when the caller left it empty and
// is never overwritten by a later update.
func (ts *TaskStore) Save(task types.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	ts.store.mu.Lock()
	defer ts.store.mu.Unlock()

	if !ts.store.open {
		return types.ErrStoreClosed
	}

	createdAt := task.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := ts.store.db.Exec(`INSERT INTO tasks (id, title, done, is_today, est_minutes, notes, project, tags, due, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    title = excluded.title,
    done = excluded.done,
    is_today = excluded.is_today,
    est_minutes = excluded.est_minutes,
    notes = excluded.notes,
    project = excluded.project,
    tags = excluded.tags,
    due = excluded.due`,
		task.ID, task.Title, boolInt(task.Done), boolInt(task.IsToday),
		nullInt(task.EstMinutes), nullString(task.Notes), nullString(task.Project),
		encodeTags(task.Tags), nullString(task.Due), createdAt,
	)
	if err != nil {
		return storageErr("save task", err)
	}
	return nil
}

// Delete removes a task and any day blocks referencing it, in one
// transaction. The schema declares the foreign key without ON DELETE and
// enforcement is on every start, so the blocks go first. Deleting an id
// with no row is a no-op.
func (ts *TaskStore) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	ts.store.mu.Lock()
	defer ts.store.mu.Unlock()

	if !ts.store.open {
		return types.ErrStoreClosed
	}

	tx, err := ts.store.db.Begin()
	if err != nil {
		return storageErr("delete task", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM day_blocks WHERE task_id = ?", id); err != nil {
		return storageErr("delete task", err)
	}
	if _, err := tx.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return storageErr("delete task", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("delete task", err)
	}
	return nil
}

// scanner is the subset of sql.Row / sql.Rows the hydration helpers need.
type scanner interface {
	Scan(dest ...any) error
}

// scanTask hydrates one tasks row.
func scanTask(s scanner) (types.Task, error) {
	var (
		task       types.Task
		done       int64
		isToday    int64
		estMinutes sql.NullInt64
		notes      sql.NullString
		project    sql.NullString
		tags       sql.NullString
		due        sql.NullString
		createdAt  sql.NullString
	)
	if err := s.Scan(&task.ID, &task.Title, &done, &isToday, &estMinutes, &notes, &project, &tags, &due, &createdAt); err != nil {
		return types.Task{}, err
	}

	task.Done = done != 0
	task.IsToday = isToday != 0
	if estMinutes.Valid {
		v := estMinutes.Int64
		task.EstMinutes = &v
	}
	task.Notes = notes.String
	task.Project = project.String
	task.Tags = decodeTags(tags)
	task.Due = due.String
	task.CreatedAt = createdAt.String

	return task, nil
}

// encodeTags serializes tags as a JSON array string. A nil slice encodes
// as the empty array so NULL-vs-empty never leaks into the column.
func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// decodeTags parses the tags column. NULL, empty, or malformed content
// yields an empty slice: a corrupt auxiliary field must not make tasks
// unreadable.
func decodeTags(column sql.NullString) []string {
	if !column.Valid || column.String == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(column.String), &tags); err != nil {
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}

// nullString maps "" to NULL for optional text columns.
func nullString(v string) any {
	if v == "" {
		return nil
	}
	return v
}

// nullInt maps nil to NULL for optional integer columns.
func nullInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// boolInt stores booleans as 0/1.
func boolInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
