package usecase

import (
	"context"
	"io"
	"testing"

	"unibooking/internal/domain/entity"
	"unibooking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestDeletePaymentRequiresAdmin(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := service.NewAttachmentStore(afero.NewMemMapFs(), "storage/attachments", log)
	u := NewHotelPaymentUsecase(nil, log, nil, nil, nil, nil, store)

	err := u.DeletePayment(context.Background(), &entity.Actor{ID: uuid.New()}, uuid.New())
	assert.ErrorIs(t, err, ErrAdminOnly)
}

// Attachment blobs must outlive a transaction that never commits;
// only a committed row delete may remove them.
func TestDeletePaymentKeepsAttachmentsOnFailure(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	// No connection pool behind this dialector, so the delete
	// transaction fails before touching any rows.
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)

	store := service.NewAttachmentStore(afero.NewMemMapFs(), "storage/attachments", log)
	paymentID := uuid.New()
	key, err := store.Save("payment", paymentID.String(), "bank_file", "slip.pdf", []byte("slip"))
	require.NoError(t, err)

	u := NewHotelPaymentUsecase(db, log, nil, nil, nil, nil, store)
	admin := &entity.Actor{ID: uuid.New(), Name: "ops", IsAdmin: true}

	err = u.DeletePayment(context.Background(), admin, paymentID)
	require.Error(t, err)

	rc, err := store.Open(key)
	require.NoError(t, err, "attachments must survive a failed delete")
	rc.Close()
}
