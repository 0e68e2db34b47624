package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebrationgarden/internal/domain"
)

func TestInvitationService_GetBySlug(t *testing.T) {
	svc := NewInvitationService(galaStore(), testLogger, time.Second)

	inv, err := svc.GetBySlug(context.Background(), "gala")
	require.NoError(t, err)
	assert.Equal(t, 7, inv.ID)

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetBySlug(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvitationService_List(t *testing.T) {
	store := galaStore()
	store.invitations = append(store.invitations,
		domain.Invitation{ID: 8, Slug: "old-gala", Title: "Old Gala", EventDate: "2020-01-01"})
	svc := NewInvitationService(store, testLogger, time.Second)
	svc.now = func() time.Time { return time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC) }

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].EntryCount)
	assert.False(t, got[0].IsExpired) // no event date set
	assert.True(t, got[1].IsExpired)
	assert.Equal(t, 0, got[1].EntryCount)
}
