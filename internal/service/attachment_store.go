package service

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// AttachmentStore persists payment and booking attachments (receipts,
// invoices, original vouchers) as opaque blobs keyed by owner id and
// field name. Backed by afero so tests run against an in-memory fs.
type AttachmentStore struct {
	fs   afero.Fs
	base string
	log  *logrus.Logger
}

func NewAttachmentStore(fs afero.Fs, base string, log *logrus.Logger) *AttachmentStore {
	return &AttachmentStore{fs: fs, base: base, log: log}
}

// Save writes the blob and returns its storage key. The key is what
// gets persisted on the payment/booking row.
func (s *AttachmentStore) Save(ownerKind, ownerID, field, filename string, data []byte) (string, error) {
	name := sanitizeFilename(filename)
	if name == "" {
		name = "attachment"
	}
	key := path.Join(ownerKind, ownerID, field, name)
	full := path.Join(s.base, key)

	if err := s.fs.MkdirAll(path.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create attachment dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, full, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}

	s.log.Debugf("Stored attachment %s (%d bytes)", key, len(data))
	return key, nil
}

// Open returns a reader for a previously stored attachment key.
func (s *AttachmentStore) Open(key string) (io.ReadCloser, error) {
	return s.fs.Open(path.Join(s.base, key))
}

// Delete removes every attachment stored under the given owner.
func (s *AttachmentStore) Delete(ownerKind, ownerID string) error {
	return s.fs.RemoveAll(path.Join(s.base, ownerKind, ownerID))
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	return strings.Trim(name, "._")
}
