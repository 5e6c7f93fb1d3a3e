package components

import (
	"roombook/internal/infra/db"
	"roombook/internal/infra/mailer"
	"roombook/internal/infra/readstore"
	"roombook/internal/infra/repository"
	"roombook/internal/infra/storage"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repository.NewOtpRepository,
			fx.As(new(commands.OtpRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewOtpReadStore,
			fx.As(new(queries.OtpReadStore)),
		),
		// Outbound
		fx.Annotate(
			mailer.NewSMTPGateway,
			fx.As(new(commands.NotificationGateway)),
		),
		storage.NewImageStore,
		func(s *storage.ImageStore) commands.ImageStore { return s },
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
