package repository

import (
	"context"

	"roombook/internal/domain/room"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/pgconv"
	"roombook/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, entity *room.Room) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO rooms (name, capacity, features, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING id`,
		entity.Name(),
		entity.Capacity(),
		entity.Features().Serialize(),
		pgconv.StringPtrToPgtype(entity.Image()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, entity *room.Room) error {
	tag, err := tx.Exec(ctx, `
		UPDATE rooms SET
			name = $2,
			capacity = $3,
			features = $4,
			image = $5,
			updated_at = now()
		WHERE id = $1`,
		entity.ID(),
		entity.Name(),
		entity.Capacity(),
		entity.Features().Serialize(),
		pgconv.StringPtrToPgtype(entity.Image()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, tx db.DBTX, id int64) (*commands.RoomSnapshot, error) {
	var snap commands.RoomSnapshot
	err := tx.QueryRow(ctx,
		`SELECT id, name, capacity FROM rooms WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Name, &snap.Capacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &snap, nil
}

func (r *RoomRepository) FindImageByID(ctx context.Context, tx db.DBTX, id int64) (*string, error) {
	var image pgtype.Text
	err := tx.QueryRow(ctx, `SELECT image FROM rooms WHERE id = $1`, id).Scan(&image)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room image", err)
	}
	return pgconv.StringPtrFromPgtype(image), nil
}
