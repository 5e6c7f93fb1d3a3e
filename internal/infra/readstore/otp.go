package readstore

import (
	"context"

	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/pgconv"
	"roombook/internal/usecase/queries"
)

type OtpReadStore struct {
	db db.DBTX
}

func NewOtpReadStore(db db.DBTX) *OtpReadStore {
	return &OtpReadStore{db: db}
}

func (s *OtpReadStore) FindByEmail(ctx context.Context, email string) (*queries.OtpRecordView, error) {
	var view queries.OtpRecordView
	err := s.db.QueryRow(ctx, `
		SELECT email, expires_at, created_at, is_verified
		FROM otp_storage
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		email,
	).Scan(&view.Email, &view.ExpiresAt, &view.CreatedAt, &view.Verified)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("otp record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find otp record", err)
	}
	return &view, nil
}
