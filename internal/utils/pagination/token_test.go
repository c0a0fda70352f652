package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	txnDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 4, 12, 10, 30, 45, 123456789, time.UTC)

	token := EncodeToken(txnDate, createdAt)
	require.NotEmpty(t, token)

	gotDate, gotCreated, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, txnDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_NotBase64(t *testing.T) {
	_, _, err := DecodeToken("not-a-valid-token!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("2025-04-12T00:00:00Z"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|2025-04-12T10:30:45Z"))
	_, _, err := DecodeToken(token)
	assert.Error(t, err)
}
