// File: internal/store/task.go
package store

import (
	"context"
	"fmt"

	"devtask/internal/database"
	"devtask/internal/model"

	"github.com/jackc/pgx/v5"
)

// 所有任務操作一律以 (id AND owner_id) 單一條件限定擁有者，
// 不存在與非本人擁有對呼叫端不可區分。

// CreateTask 建立任務並回填資料庫產生的欄位
func CreateTask(ctx context.Context, db database.DB, t *model.Task) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO tasks (title, status, time_logged, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		t.Title,
		t.Status,
		t.TimeLogged,
		t.OwnerID,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTask: %w", err)
	}
	return t, nil
}

// ListTasksByOwner 依建立時間由新到舊回傳指定擁有者的任務
func ListTasksByOwner(ctx context.Context, db database.DB, ownerID, limit, offset int) ([]model.Task, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, status, time_logged, created_at, updated_at, owner_id
		 FROM tasks WHERE owner_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		ownerID,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTasksByOwner: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Status,
			&t.TimeLogged,
			&t.CreatedAt,
			&t.UpdatedAt,
			&t.OwnerID,
		); err != nil {
			return nil, fmt.Errorf("ListTasksByOwner: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTasksByOwner: %w", err)
	}
	return tasks, nil
}

// CountTasksByOwner 回傳指定擁有者的任務總數（不分頁）
func CountTasksByOwner(ctx context.Context, db database.DB, ownerID int) (int, error) {
	var total int
	row := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE owner_id = $1`,
		ownerID,
	)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("CountTasksByOwner: %w", err)
	}
	return total, nil
}

// GetTaskByID 查詢指定擁有者的單一任務，查無資料時回傳 pgx.ErrNoRows
func GetTaskByID(ctx context.Context, db database.DB, ownerID, taskID int) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, status, time_logged, created_at, updated_at, owner_id
		 FROM tasks WHERE id = $1 AND owner_id = $2`,
		taskID,
		ownerID,
	)
	t := &model.Task{}
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Status,
		&t.TimeLogged,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.OwnerID,
	); err != nil {
		return nil, fmt.Errorf("GetTaskByID: %w", err)
	}
	return t, nil
}

// UpdateTask 以單一 UPDATE 套用部分更新，nil 欄位維持原值並刷新 updated_at。
// 單一語句保證與並發刪除的競爭結果為 pgx.ErrNoRows，不會復活已刪除的資料列。
func UpdateTask(ctx context.Context, db database.DB, ownerID, taskID int, patch model.TaskPatch) (*model.Task, error) {
	row := db.QueryRow(ctx,
		`UPDATE tasks
		 SET title       = COALESCE($1, title),
		     status      = COALESCE($2, status),
		     time_logged = COALESCE($3, time_logged),
		     updated_at  = now()
		 WHERE id = $4 AND owner_id = $5
		 RETURNING id, title, status, time_logged, created_at, updated_at, owner_id`,
		patch.Title,
		patch.Status,
		patch.TimeLogged,
		taskID,
		ownerID,
	)
	t := &model.Task{}
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Status,
		&t.TimeLogged,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.OwnerID,
	); err != nil {
		return nil, fmt.Errorf("UpdateTask: %w", err)
	}
	return t, nil
}

// DeleteTask 永久刪除指定擁有者的任務，查無資料時回傳 pgx.ErrNoRows
func DeleteTask(ctx context.Context, db database.DB, ownerID, taskID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND owner_id = $2`,
		taskID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTask: %w", pgx.ErrNoRows)
	}
	return nil
}
