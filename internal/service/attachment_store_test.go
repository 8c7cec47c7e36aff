package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *AttachmentStore {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAttachmentStore(afero.NewMemMapFs(), "storage/attachments", log)
}

func TestAttachmentStoreSaveAndOpen(t *testing.T) {
	store := newTestStore()

	key, err := store.Save("payment", "abc-123", "invoice_file", "scan.pdf", []byte("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "payment/abc-123/invoice_file/scan.pdf", key)

	rc, err := store.Open(key)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)
}

func TestAttachmentStoreSanitizesFilenames(t *testing.T) {
	store := newTestStore()

	key, err := store.Save("payment", "abc-123", "bank_file", "../../etc/pass wd!.pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "payment/abc-123/bank_file/pass_wd_.pdf", key)

	key, err = store.Save("payment", "abc-123", "bank_file", "///", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "payment/abc-123/bank_file/attachment", key)
}

func TestAttachmentStoreDelete(t *testing.T) {
	store := newTestStore()

	key, err := store.Save("payment", "abc-123", "invoice_file", "scan.pdf", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete("payment", "abc-123"))

	_, err = store.Open(key)
	assert.Error(t, err)
}
