package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PGStore implements Store on the student_records table, one JSONB document per row.
type PGStore struct {
	DB *sql.DB
}

// List returns a student's records for a collection, oldest first.
func (s *PGStore) List(ctx context.Context, studentID string, c Collection) ([]Record, error) {
	const query = `
SELECT data
FROM student_records
WHERE student_id = $1 AND collection = $2
ORDER BY created_at ASC, id ASC`
	rows, err := s.DB.QueryContext(ctx, query, studentID, string(c))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		rec := Record{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, fmt.Errorf("decode %s record: %w", c, err)
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Put inserts a record.
func (s *PGStore) Put(ctx context.Context, studentID string, c Collection, rec Record) error {
	const query = `
INSERT INTO student_records (id, student_id, collection, data, created_at)
VALUES ($1, $2, $3, $4, $5)`
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", c, err)
	}
	_, err = s.DB.ExecContext(ctx, query,
		uuid.NewString(),
		studentID,
		string(c),
		payload,
		time.Now().UTC(),
	)
	return err
}

var _ Store = (*PGStore)(nil)
