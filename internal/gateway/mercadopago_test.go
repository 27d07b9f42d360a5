package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const (
		secret    = "test-webhook-secret"
		dataID    = "84930221"
		requestID = "req-123"
		ts        = "1718900000"
	)

	g := &MercadoPago{webhookSecret: secret}

	t.Run("ValidSignature", func(t *testing.T) {
		header := fmt.Sprintf("ts=%s,v1=%s", ts, sign(secret, dataID, requestID, ts))

		require.NoError(t, g.VerifySignature(header, requestID, dataID))
	})

	t.Run("ValidSignatureWithSpaces", func(t *testing.T) {
		header := fmt.Sprintf("ts=%s, v1=%s", ts, sign(secret, dataID, requestID, ts))

		require.NoError(t, g.VerifySignature(header, requestID, dataID))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		header := fmt.Sprintf("ts=%s,v1=%s", ts, sign("other-secret", dataID, requestID, ts))

		assert.ErrorIs(t, g.VerifySignature(header, requestID, dataID), ErrBadSignature)
	})

	t.Run("TamperedDataID", func(t *testing.T) {
		header := fmt.Sprintf("ts=%s,v1=%s", ts, sign(secret, dataID, requestID, ts))

		assert.ErrorIs(t, g.VerifySignature(header, requestID, "99999999"), ErrBadSignature)
	})

	t.Run("TamperedTimestamp", func(t *testing.T) {
		header := fmt.Sprintf("ts=1718999999,v1=%s", sign(secret, dataID, requestID, ts))

		assert.ErrorIs(t, g.VerifySignature(header, requestID, dataID), ErrBadSignature)
	})

	t.Run("MissingParts", func(t *testing.T) {
		assert.ErrorIs(t, g.VerifySignature("", requestID, dataID), ErrBadSignature)
		assert.ErrorIs(t, g.VerifySignature("ts=123", requestID, dataID), ErrBadSignature)
		assert.ErrorIs(t, g.VerifySignature("v1=abc", requestID, dataID), ErrBadSignature)
		assert.ErrorIs(t, g.VerifySignature("garbage", requestID, dataID), ErrBadSignature)
	})
}
