package proof

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "session-1"

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device removed")
}

func TestEncodeProducesDataURL(t *testing.T) {
	encoder := NewEncoder(NewMemoryStore(), 5<<20)

	content := "fake image bytes"
	err := encoder.Encode(context.Background(), testSession, SlotBankTransfer, "image/png", int64(len(content)), strings.NewReader(content))
	require.NoError(t, err)

	encoded, err := encoder.Get(context.Background(), testSession, SlotBankTransfer)
	require.NoError(t, err)

	expected := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(content))
	assert.Equal(t, expected, encoded)
}

func TestEncodeDefaultsContentType(t *testing.T) {
	encoder := NewEncoder(NewMemoryStore(), 5<<20)

	err := encoder.Encode(context.Background(), testSession, SlotCODAdvance, "", 4, strings.NewReader("abcd"))
	require.NoError(t, err)

	encoded, err := encoder.Get(context.Background(), testSession, SlotCODAdvance)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "data:image/jpeg;base64,"))
}

func TestEncodeRejectsOversizeDeclaredSize(t *testing.T) {
	encoder := NewEncoder(NewMemoryStore(), 16)

	err := encoder.Encode(context.Background(), testSession, SlotBankTransfer, "image/png", 17, strings.NewReader("ignored"))

	var encodingErr *EncodingError
	require.ErrorAs(t, err, &encodingErr)
	assert.Equal(t, SlotBankTransfer, encodingErr.Slot)
	assert.Equal(t, "File size too large. Maximum size is 5MB.", encodingErr.Message)
}

func TestEncodeRejectsOversizeActualContent(t *testing.T) {
	encoder := NewEncoder(NewMemoryStore(), 8)

	// Declared size lies; the actual stream is over the cap
	err := encoder.Encode(context.Background(), testSession, SlotBankTransfer, "image/png", 4, strings.NewReader("way more than eight bytes"))

	var encodingErr *EncodingError
	require.ErrorAs(t, err, &encodingErr)
	assert.Equal(t, "File size too large. Maximum size is 5MB.", encodingErr.Message)
}

func TestEncodeOversizeKeepsExistingEncoding(t *testing.T) {
	encoder := NewEncoder(NewMemoryStore(), 32)

	require.NoError(t, encoder.Encode(context.Background(), testSession, SlotBankTransfer, "image/png", 4, strings.NewReader("good")))

	err := encoder.Encode(context.Background(), testSession, SlotBankTransfer, "image/png", 64, strings.NewReader("too big"))
	var encodingErr *EncodingError
	require.ErrorAs(t, err, &encodingErr)

	encoded, getErr := encoder.Get(context.Background(), testSession, SlotBankTransfer)
	require.NoError(t, getErr)
	assert.Contains(t, encoded, base64.StdEncoding.EncodeToString([]byte("good")))
}

func TestEncodeReadFailureClearsSlot(t *testing.T) {
	encoder := NewEncoder(NewMemoryStore(), 5<<20)

	require.NoError(t, encoder.Encode(context.Background(), testSession, SlotBankTransfer, "image/png", 4, strings.NewReader("good")))

	err := encoder.Encode(context.Background(), testSession, SlotBankTransfer, "image/png", 4, failingReader{})

	var encodingErr *EncodingError
	require.ErrorAs(t, err, &encodingErr)
	assert.Equal(t, "Failed to read image file.", encodingErr.Message)

	encoded, getErr := encoder.Get(context.Background(), testSession, SlotBankTransfer)
	require.NoError(t, getErr)
	assert.Empty(t, encoded)
}

func TestRemoveAndClear(t *testing.T) {
	encoder := NewEncoder(NewMemoryStore(), 5<<20)
	ctx := context.Background()

	require.NoError(t, encoder.Encode(ctx, testSession, SlotBankTransfer, "image/png", 4, strings.NewReader("bank")))
	require.NoError(t, encoder.Encode(ctx, testSession, SlotCODAdvance, "image/png", 3, strings.NewReader("cod")))

	require.NoError(t, encoder.Remove(ctx, testSession, SlotBankTransfer))
	encoded, err := encoder.Get(ctx, testSession, SlotBankTransfer)
	require.NoError(t, err)
	assert.Empty(t, encoded)

	require.NoError(t, encoder.Clear(ctx, testSession))
	encoded, err = encoder.Get(ctx, testSession, SlotCODAdvance)
	require.NoError(t, err)
	assert.Empty(t, encoded)
}

func TestSlotField(t *testing.T) {
	assert.Equal(t, "bankTransferProof", SlotBankTransfer.Field())
	assert.Equal(t, "codDeliveryProof", SlotCODAdvance.Field())
	assert.True(t, SlotBankTransfer.Valid())
	assert.True(t, SlotCODAdvance.Valid())
	assert.False(t, Slot("passport_scan").Valid())
}

func TestPendingReflectsInFlightEncodings(t *testing.T) {
	encoder := NewEncoder(NewMemoryStore(), 5<<20)

	assert.False(t, encoder.Pending(testSession))

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = encoder.Encode(context.Background(), testSession, SlotBankTransfer, "image/png", 4, blockingReader{started: started, release: release})
	}()

	<-started
	assert.True(t, encoder.Pending(testSession))

	close(release)
}

type blockingReader struct {
	started chan struct{}
	release chan struct{}
}

func (r blockingReader) Read(p []byte) (int, error) {
	select {
	case <-r.started:
	default:
		close(r.started)
	}
	<-r.release
	return 0, errors.New("released")
}
