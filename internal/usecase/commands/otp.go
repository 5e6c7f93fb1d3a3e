package commands

import (
	"context"
	"fmt"
	"strings"

	"roombook/internal/domain/otp"
	"roombook/internal/infra"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/config"
	"roombook/internal/pkg/errs"
	"roombook/internal/pkg/token"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// Wrong code and expired code map to the same error on purpose; the
	// response must not leak which check failed.
	ErrOtpInvalidOrExpired = errs.New("invalid or expired code")
	ErrOtpSendFailed       = errs.New("failed to send verification code")
)

type OtpCommands interface {
	Send(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
	// Cleanup bulk-deletes expired records and returns the count. Invoked on
	// demand; callers own the scheduling.
	Cleanup(ctx context.Context) (int64, error)
}

type otpCommandsImpl struct {
	otpRepo OtpRepository
	gateway NotificationGateway
	pool    *pgxpool.Pool
	clock   clock.Clock
	cfg     config.OTPConfig
}

func NewOtpCommands(
	otpRepo OtpRepository,
	gateway NotificationGateway,
	pool *pgxpool.Pool,
	clock clock.Clock,
	cfg config.OTPConfig,
) OtpCommands {
	return &otpCommandsImpl{
		otpRepo: otpRepo,
		gateway: gateway,
		pool:    pool,
		clock:   clock,
		cfg:     cfg,
	}
}

// Send overwrites any prior record for the email, resetting the verified
// flag. Unlike booking mail, a failed send here is an error: the caller has
// nothing usable without the code.
func (c *otpCommandsImpl) Send(ctx context.Context, email string) error {
	code, err := token.NumericCode(c.cfg.CodeLength)
	if err != nil {
		return errs.Wrap(err, "failed to generate code")
	}

	record, err := otp.NewRecord(email, code, c.clock.Now(), c.cfg.TTL)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := c.otpRepo.Upsert(ctx, c.pool, record); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	body := fmt.Sprintf(
		"<h2>Your verification code</h2><p><b>%s</b></p><p>The code expires in %d minutes.</p>",
		record.Code(), int(c.cfg.TTL.Minutes()),
	)
	if err := c.gateway.Send(ctx, record.Email(), "Your verification code", body); err != nil {
		return errs.Mark(err, ErrOtpSendFailed)
	}

	return nil
}

func (c *otpCommandsImpl) Verify(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	record, err := c.otpRepo.FindLatestByEmail(ctx, c.pool, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOtpInvalidOrExpired
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !record.Matches(code, c.clock.Now()) {
		return ErrOtpInvalidOrExpired
	}

	if err := c.otpRepo.MarkVerified(ctx, c.pool, record.Email(), record.Code()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (c *otpCommandsImpl) Cleanup(ctx context.Context) (int64, error) {
	deleted, err := c.otpRepo.DeleteExpired(ctx, c.pool, c.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return deleted, nil
}
