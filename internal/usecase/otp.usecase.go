package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"time"

	"todo-service/internal/domain"
	"todo-service/internal/rate"
	"todo-service/pkg/id"
	"todo-service/pkg/xerrors"
)

const PurposeVerifyEmail = "verify_email"

// EmailNotifier dispatches a message; implementations are expected to be
// safe to call from a background goroutine.
type EmailNotifier interface {
	Deliver(userID, recipient, subject, body, emailType string)
}

type OTPUsecase struct {
	userRepo domain.UserRepository
	store    domain.OTPStore
	audit    domain.OTPAuditRepository
	limiter  *rate.Limiter
	Sf       *id.Snowflake
	notifier EmailNotifier
	ttl      time.Duration
}

func NewOTPUsecase(
	userRepo domain.UserRepository,
	store domain.OTPStore,
	audit domain.OTPAuditRepository,
	limiter *rate.Limiter,
	sf *id.Snowflake,
	notifier EmailNotifier,
	ttl time.Duration,
) *OTPUsecase {
	return &OTPUsecase{
		userRepo: userRepo,
		store:    store,
		audit:    audit,
		limiter:  limiter,
		Sf:       sf,
		notifier: notifier,
		ttl:      ttl,
	}
}

// Generate issues a fresh code for the user, caches it until its TTL, and
// dispatches the email off the request goroutine. Returns the masked
// recipient address.
func (u *OTPUsecase) Generate(ctx context.Context, userID, purpose string) (string, error) {
	if err := u.limiter.CanRequest(ctx, userID, purpose); err != nil {
		return "", err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.Email == "" {
		return "", xerrors.ErrUserNoEmail
	}

	code := randomCode(6)
	now := time.Now()

	if err := u.store.Save(ctx, userID, purpose, code, u.ttl); err != nil {
		return "", err
	}

	otp := &domain.UserOTP{
		ID:         u.Sf.Generate(),
		UserID:     userID,
		Code:       code,
		Purpose:    purpose,
		IssuedAt:   now,
		ValidUntil: now.Add(u.ttl),
		IsVerified: false,
		IsActive:   true,
		UpdatedAt:  now,
	}

	// Audit insert must not block the request
	go func() {
		if err := u.audit.Create(context.Background(), otp); err != nil {
			log.Printf("failed to insert OTP audit row: %v", err)
		}
	}()

	subject := "OTP Code"
	body := u.formatOTPMessage(purpose, code)
	go u.notifier.Deliver(userID, user.Email, subject, body, "otp")

	return maskEmail(user.Email), nil
}

// Verify compares the submitted code with the cached one, consumes it on
// success, and for verify_email marks the account's email verified. Missing,
// expired, and wrong codes are indistinguishable to the caller.
func (u *OTPUsecase) Verify(ctx context.Context, userID, purpose, code string) error {
	if code == "" {
		return xerrors.ErrInvalidOTP
	}

	val, err := u.store.Get(ctx, userID, purpose)
	if err != nil {
		if errors.Is(err, xerrors.ErrExpiredOTP) {
			return xerrors.ErrInvalidOTP
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(val), []byte(code)) != 1 {
		return xerrors.ErrInvalidOTP
	}

	if err := u.store.Delete(ctx, userID, purpose); err != nil {
		log.Printf("failed to delete OTP for user %s: %v", userID, err)
	}

	go func() {
		if _, err := u.audit.MarkVerified(context.Background(), userID, purpose, code); err != nil {
			log.Printf("OTP audit verify update failed: %v", err)
		}
	}()

	if purpose == PurposeVerifyEmail {
		if err := u.userRepo.MarkEmailVerified(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}

func (u *OTPUsecase) formatOTPMessage(purpose, code string) string {
	ttlMinutes := int(u.ttl.Minutes())
	return fmt.Sprintf(
		"Your OTP code for %s is %s. It is valid for %d minutes.",
		formatPurpose(purpose), code, ttlMinutes,
	)
}
