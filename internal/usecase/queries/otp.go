package queries

import (
	"context"
	"strings"
	"time"

	"roombook/internal/infra"
	"roombook/internal/pkg/clock"
)

type OtpRecordView struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Verified  bool      `json:"is_verified"`
}

type OtpStatusView struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type OtpQueries interface {
	Status(ctx context.Context, email string) (*OtpStatusView, error)
}

type OtpReadStore interface {
	FindByEmail(ctx context.Context, email string) (*OtpRecordView, error)
}

type otpQueriesImpl struct {
	store OtpReadStore
	clock clock.Clock
}

func NewOtpQueries(store OtpReadStore, clock clock.Clock) OtpQueries {
	return &otpQueriesImpl{store: store, clock: clock}
}

// Status reports whether a verified, still-unexpired record exists. A missing
// record is an unverified status, not an error.
func (q *otpQueriesImpl) Status(ctx context.Context, email string) (*OtpStatusView, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	record, err := q.store.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &OtpStatusView{Email: email, Verified: false}, nil
		}
		return nil, err
	}

	// Same boundary as otp.Record.IsUsable: a record is valid up to and
	// including its expiry instant.
	verified := record.Verified && !q.clock.Now().After(record.ExpiresAt)
	return &OtpStatusView{Email: email, Verified: verified}, nil
}
