package otp

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toodlepoodle/property-listings-martin/internal/model"
	"github.com/Toodlepoodle/property-listings-martin/pkg/database"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := database.NewStore[model.OTPRecord](t.TempDir(), "otps")
	return NewService(store)
}

func TestIssueAndVerify(t *testing.T) {
	s := newTestService(t)

	rec, err := s.Issue("user@example.com", model.ChannelEmail)
	require.NoError(t, err)
	assert.Len(t, rec.Code, CodeLength)
	assert.Equal(t, model.ChannelEmail, rec.Channel)

	res, err := s.Verify("user@example.com", rec.Code)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, ReasonSuccess, res.Reason)

	// The record is consumed; a second verify finds nothing.
	res, err = s.Verify("user@example.com", rec.Code)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonNotFound, res.Reason)
}

func TestVerify_UnknownIdentifier(t *testing.T) {
	s := newTestService(t)

	res, err := s.Verify("ghost@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonNotFound, res.Reason)
}

func TestVerify_Mismatch(t *testing.T) {
	s := newTestService(t)

	rec, err := s.Issue("user@example.com", model.ChannelEmail)
	require.NoError(t, err)

	wrong := "000000"
	if rec.Code == wrong {
		wrong = "999999"
	}

	res, err := s.Verify("user@example.com", wrong)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonMismatch, res.Reason)

	// The correct code still works after a single miss.
	res, err = s.Verify("user@example.com", rec.Code)
	require.NoError(t, err)
	assert.True(t, res.OK)
}

func TestVerify_ThreeFailuresBlockEvenTheCorrectCode(t *testing.T) {
	s := newTestService(t)

	rec, err := s.Issue("9902925519", model.ChannelPhone)
	require.NoError(t, err)

	wrong := "000000"
	if rec.Code == wrong {
		wrong = "999999"
	}

	for i := 0; i < MaxAttempts; i++ {
		res, err := s.Verify("9902925519", wrong)
		require.NoError(t, err)
		assert.Equal(t, ReasonMismatch, res.Reason)
	}

	// Fourth attempt with the right code is still refused.
	res, err := s.Verify("9902925519", rec.Code)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonTooManyAttempts, res.Reason)

	// A reissue clears the block.
	rec2, err := s.Issue("9902925519", model.ChannelPhone)
	require.NoError(t, err)
	res, err = s.Verify("9902925519", rec2.Code)
	require.NoError(t, err)
	assert.True(t, res.OK)
}

func TestIssue_ReplacesPendingCode(t *testing.T) {
	s := newTestService(t)

	first, err := s.Issue("user@example.com", model.ChannelEmail)
	require.NoError(t, err)
	second, err := s.Issue("user@example.com", model.ChannelEmail)
	require.NoError(t, err)

	if first.Code != second.Code {
		res, err := s.Verify("user@example.com", first.Code)
		require.NoError(t, err)
		assert.False(t, res.OK, "superseded code must not verify")
	}

	res, err := s.Verify("user@example.com", second.Code)
	require.NoError(t, err)
	assert.True(t, res.OK)
}

func TestIssue_KeepsOtherIdentifiersAlive(t *testing.T) {
	s := newTestService(t)

	a, err := s.Issue("a@example.com", model.ChannelEmail)
	require.NoError(t, err)
	_, err = s.Issue("b@example.com", model.ChannelEmail)
	require.NoError(t, err)

	res, err := s.Verify("a@example.com", a.Code)
	require.NoError(t, err)
	assert.True(t, res.OK)
}

func TestVerify_ExpiredRecordIsReportedAndRemoved(t *testing.T) {
	s := newTestService(t)

	rec, err := s.Issue("user@example.com", model.ChannelEmail)
	require.NoError(t, err)

	// Jump the clock past the expiry window.
	s.now = func() time.Time { return time.Now().Add(Expiry + time.Minute) }

	res, err := s.Verify("user@example.com", rec.Code)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonExpired, res.Reason)

	// The stale record is gone now.
	res, err = s.Verify("user@example.com", rec.Code)
	require.NoError(t, err)
	assert.Equal(t, ReasonNotFound, res.Reason)
}

func TestGenerateCode_AlwaysSixDigits(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)
		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 999999)
	}
}
