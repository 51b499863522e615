// Package otp issues, stores and checks one-time login codes. Delivery of
// the code to the user is the caller's concern.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
)

const (
	CodeLength  = 6
	Expiry      = 10 * time.Minute
	MaxAttempts = 3
)

// Verification outcome reasons.
const (
	ReasonSuccess         = "success"
	ReasonNotFound        = "not_found_or_expired"
	ReasonExpired         = "expired"
	ReasonTooManyAttempts = "too_many_attempts"
	ReasonMismatch        = "mismatch"
)

// Result is the outcome of a verification attempt.
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

// Service manages the pending-code collection. No cooldown is enforced
// between issues for the same identifier; that gap is intentional.
type Service struct {
	store *database.Store[model.OTPRecord]
	now   func() time.Time
}

func NewService(store *database.Store[model.OTPRecord]) *Service {
	return &Service{store: store, now: time.Now}
}

// Issue creates a fresh code for the identifier, unconditionally discarding
// any pending one, and returns the stored record so the caller can dispatch
// the code.
func (s *Service) Issue(identifier string, channel model.OTPChannel) (model.OTPRecord, error) {
	code, err := GenerateCode()
	if err != nil {
		return model.OTPRecord{}, err
	}

	rec := model.OTPRecord{
		Identifier: identifier,
		Code:       code,
		Channel:    channel,
		ExpiresAt:  s.now().Add(Expiry),
		CreatedAt:  s.now(),
	}

	col := s.store.Load()
	kept := col.Items[:0]
	for _, existing := range col.Items {
		if existing.Identifier != identifier {
			kept = append(kept, existing)
		}
	}
	col.Items = append(kept, rec)

	if err := s.store.Save(col); err != nil {
		return model.OTPRecord{}, err
	}
	return rec, nil
}

// Verify checks the supplied code for the identifier.
//
// State transitions: a stale record found during verification is removed and
// reported as expired; a successful verification consumes the record; a
// mismatch bumps the attempt counter, and once MaxAttempts failures have
// accumulated even the correct code is refused until a new code is issued.
func (s *Service) Verify(identifier, suppliedCode string) (Result, error) {
	col := s.store.Load()

	idx := -1
	for i, rec := range col.Items {
		if rec.Identifier == identifier {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Result{OK: false, Reason: ReasonNotFound}, nil
	}

	rec := col.Items[idx]

	if s.now().After(rec.ExpiresAt) {
		col.Items = append(col.Items[:idx], col.Items[idx+1:]...)
		if err := s.store.Save(col); err != nil {
			return Result{}, err
		}
		return Result{OK: false, Reason: ReasonExpired}, nil
	}

	if rec.Attempts >= MaxAttempts {
		return Result{OK: false, Reason: ReasonTooManyAttempts}, nil
	}

	if rec.Code != suppliedCode {
		col.Items[idx].Attempts++
		if err := s.store.Save(col); err != nil {
			return Result{}, err
		}
		return Result{OK: false, Reason: ReasonMismatch}, nil
	}

	col.Items = append(col.Items[:idx], col.Items[idx+1:]...)
	if err := s.store.Save(col); err != nil {
		return Result{}, err
	}
	return Result{OK: true, Reason: ReasonSuccess}, nil
}

// GenerateCode draws a uniform 6-digit numeric code, zero-padded, so every
// value from 000000 through 999999 is equally likely.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}
