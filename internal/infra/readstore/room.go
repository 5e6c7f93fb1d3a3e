package readstore

import (
	"context"

	"roombook/internal/domain/room"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/pgconv"
	"roombook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (s *RoomReadStore) FindByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	var (
		view     queries.RoomView
		features string
		image    pgtype.Text
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, name, capacity, features, image, created_at, updated_at
		FROM rooms
		WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.Name, &view.Capacity, &features, &image, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	view.Features = room.ParseFeatures(features)
	view.Image = pgconv.StringPtrFromPgtype(image)
	return &view, nil
}

func (s *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, capacity, features, image, created_at, updated_at
		FROM rooms
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		var (
			view     queries.RoomView
			features string
			image    pgtype.Text
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Capacity, &features, &image, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		view.Features = room.ParseFeatures(features)
		view.Image = pgconv.StringPtrFromPgtype(image)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}
