package commands

import (
	"context"
	"log/slog"

	"roombook/internal/domain/room"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateRoomParams struct {
	Name     string
	Capacity int
	Features []string
	Image    *string
}

type UpdateRoomParams struct {
	Name     string
	Capacity int
	Features []string
	// Image nil keeps the stored image; non-nil replaces it and the previous
	// file is removed after the row change commits.
	Image *string
}

type RoomCommands interface {
	Create(ctx context.Context, params CreateRoomParams) (int64, error)
	Update(ctx context.Context, id int64, params UpdateRoomParams) error
	Delete(ctx context.Context, id int64) error
}

type roomCommandsImpl struct {
	roomRepo   RoomRepository
	imageStore ImageStore
	pool       *pgxpool.Pool
}

func NewRoomCommands(roomRepo RoomRepository, imageStore ImageStore, pool *pgxpool.Pool) RoomCommands {
	return &roomCommandsImpl{
		roomRepo:   roomRepo,
		imageStore: imageStore,
		pool:       pool,
	}
}

func (c *roomCommandsImpl) Create(ctx context.Context, params CreateRoomParams) (int64, error) {
	entity, err := room.NewRoom(params.Name, params.Capacity, room.NewFeatures(params.Features), params.Image)
	if err != nil {
		return 0, errs.Mark(err, ErrDomainValidation)
	}

	var id int64
	txErr := db.Within(ctx, c.pool, func(ctx context.Context, tx db.DBTX) error {
		created, err := c.roomRepo.Create(ctx, tx, entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}

	return id, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, id int64, params UpdateRoomParams) error {
	var previousImage *string

	txErr := db.Within(ctx, c.pool, func(ctx context.Context, tx db.DBTX) error {
		stored, err := c.roomRepo.FindImageByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		image := stored
		if params.Image != nil {
			image = params.Image
			previousImage = stored
		}

		entity, err := room.NewRoom(params.Name, params.Capacity, room.NewFeatures(params.Features), image)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		updated := room.ReconstructRoom(id, entity.Name(), entity.Capacity(), entity.Features(), entity.Image(), entity.CreatedAt(), entity.UpdatedAt())
		if err := c.roomRepo.Update(ctx, tx, updated); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	// The old file goes away only after the commit; a leftover file beats a
	// room row pointing at a deleted image.
	c.removeImageFile(previousImage, id)
	return nil
}

func (c *roomCommandsImpl) Delete(ctx context.Context, id int64) error {
	var image *string

	txErr := db.Within(ctx, c.pool, func(ctx context.Context, tx db.DBTX) error {
		stored, err := c.roomRepo.FindImageByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		image = stored

		if err := c.roomRepo.Delete(ctx, tx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	c.removeImageFile(image, id)
	return nil
}

func (c *roomCommandsImpl) removeImageFile(image *string, roomID int64) {
	if image == nil || *image == "" {
		return
	}
	if err := c.imageStore.Delete(*image); err != nil {
		slog.Warn("failed to remove room image file",
			"room_id", roomID,
			"image", *image,
			"error", err.Error())
	}
}
