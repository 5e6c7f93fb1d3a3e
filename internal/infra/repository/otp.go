package repository

import (
	"context"
	"time"

	"roombook/internal/domain/otp"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/pgconv"
)

type OtpRepository struct{}

func NewOtpRepository() *OtpRepository {
	return &OtpRepository{}
}

// Upsert keeps a single active record per email; re-sending resets the
// verified flag.
func (r *OtpRepository) Upsert(ctx context.Context, tx db.DBTX, record *otp.Record) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO otp_storage (email, otp, expires_at, created_at, is_verified)
		VALUES ($1, $2, $3, $4, false)
		ON CONFLICT (email) DO UPDATE SET
			otp = EXCLUDED.otp,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at,
			is_verified = false`,
		record.Email(),
		record.Code(),
		record.ExpiresAt(),
		record.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to store otp record", err)
	}
	return nil
}

func (r *OtpRepository) FindLatestByEmail(ctx context.Context, tx db.DBTX, email string) (*otp.Record, error) {
	var (
		storedEmail string
		code        string
		expiresAt   time.Time
		createdAt   time.Time
		verified    bool
	)
	err := tx.QueryRow(ctx, `
		SELECT email, otp, expires_at, created_at, is_verified
		FROM otp_storage
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		email,
	).Scan(&storedEmail, &code, &expiresAt, &createdAt, &verified)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("otp record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find otp record", err)
	}

	return otp.ReconstructRecord(storedEmail, code, expiresAt, createdAt, verified), nil
}

func (r *OtpRepository) MarkVerified(ctx context.Context, tx db.DBTX, email, code string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE otp_storage SET is_verified = true WHERE email = $1 AND otp = $2`,
		email, code,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark otp verified", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("otp record not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OtpRepository) DeleteExpired(ctx context.Context, tx db.DBTX, now time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM otp_storage WHERE expires_at < $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired otp records", err)
	}
	return tag.RowsAffected(), nil
}
