package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"personal-website-api/models"
)

// stubNewsletterRepo simulates a subscriber losing the check-then-insert
// race: the pre-check sees no row, but by insert time another request has
// claimed the email and the unique index fires.
type stubNewsletterRepo struct {
	createErr error
}

func (r *stubNewsletterRepo) Create(*models.Newsletter) error { return r.createErr }
func (r *stubNewsletterRepo) GetByEmail(string) (*models.Newsletter, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubNewsletterRepo) Update(*models.Newsletter) error { return nil }
func (r *stubNewsletterRepo) GetList(int, int, bool) ([]models.Newsletter, error) {
	return nil, nil
}

func TestSubscribeLostRaceIsDuplicate(t *testing.T) {
	svc := NewNewsletterService(&stubNewsletterRepo{createErr: gorm.ErrDuplicatedKey})

	_, err := svc.Subscribe("reader@example.com")
	assert.ErrorIs(t, err, ErrDuplicateSubscription)
}

func TestSubscribeFresh(t *testing.T) {
	svc := NewNewsletterService(&stubNewsletterRepo{})

	n, err := svc.Subscribe("reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", n.Email)
	assert.Equal(t, models.SubscriptionActive, n.IsActive)
}
