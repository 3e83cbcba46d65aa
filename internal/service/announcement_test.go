package service

import (
	"context"
	"strings"
	"testing"

	"house-points/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnnouncement(t *testing.T) {
	db := testDB(t)
	svc := NewAnnouncementService(db)

	house := createHouse(t, db, "An-Nahl", 0)
	capt := createCaptain(t, db, "nahl", "pw", house.ID)

	ann, err := svc.Create(context.Background(), &capt, model.AnnouncementRequest{
		Title:   "  Sports Day  ",
		Content: "  Bring your kit.  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sports Day", ann.Title)
	assert.Equal(t, "Bring your kit.", ann.Content)
	assert.Equal(t, house.ID, ann.HouseID)
	require.NotNil(t, ann.CaptainID)
	assert.Equal(t, capt.ID, *ann.CaptainID)
	assert.False(t, ann.CreatedAt.IsZero())
}

func TestCreateAnnouncementValidation(t *testing.T) {
	db := testDB(t)
	svc := NewAnnouncementService(db)

	house := createHouse(t, db, "An-Nun", 0)
	capt := createCaptain(t, db, "nun", "pw", house.ID)
	ctx := context.Background()

	tests := []struct {
		name string
		req  model.AnnouncementRequest
	}{
		{"empty title", model.AnnouncementRequest{Title: "  ", Content: "body"}},
		{"empty content", model.AnnouncementRequest{Title: "title", Content: "   "}},
		{"title too long", model.AnnouncementRequest{Title: strings.Repeat("x", 201), Content: "body"}},
		{"title too long multibyte", model.AnnouncementRequest{Title: strings.Repeat("ن", 201), Content: "body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &capt, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}

	// 200 chars exactly is allowed.
	_, err := svc.Create(ctx, &capt, model.AnnouncementRequest{Title: strings.Repeat("x", 200), Content: "body"})
	assert.NoError(t, err)

	// The limit counts characters, not UTF-8 bytes: 200 Arabic letters are
	// 400 bytes and still fit.
	_, err = svc.Create(ctx, &capt, model.AnnouncementRequest{Title: strings.Repeat("ن", 200), Content: "body"})
	assert.NoError(t, err)
}

func TestDeleteAnnouncementOwnership(t *testing.T) {
	db := testDB(t)
	svc := NewAnnouncementService(db)
	ctx := context.Background()

	house := createHouse(t, db, "Al-Adiyat", 0)
	owner := createCaptain(t, db, "adiyat", "pw", house.ID)
	other := createCaptain(t, db, "other", "pw", house.ID)

	ann, err := svc.Create(ctx, &owner, model.AnnouncementRequest{Title: "mine", Content: "body"})
	require.NoError(t, err)

	// Non-owner is refused and the row survives.
	err = svc.Delete(ctx, other.ID, ann.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
	var count int64
	require.NoError(t, db.Model(&model.Announcement{}).Where("id = ?", ann.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Missing row reports not-found, even to a non-owner.
	err = svc.Delete(ctx, other.ID, 9999)
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)

	require.NoError(t, svc.Delete(ctx, owner.ID, ann.ID))
	require.NoError(t, db.Model(&model.Announcement{}).Where("id = ?", ann.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListNewestFirstWithSummaries(t *testing.T) {
	db := testDB(t)
	svc := NewAnnouncementService(db)
	ctx := context.Background()

	house := createHouse(t, db, "Al-Hudhud", 0)
	capt := createCaptain(t, db, "hudhud", "pw", house.ID)

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, &capt, model.AnnouncementRequest{Title: title, Content: "body"})
		require.NoError(t, err)
	}

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "third", views[0].Title)
	assert.Equal(t, "first", views[2].Title)
	assert.Equal(t, house.Name, views[0].House.Name)
	require.NotNil(t, views[0].Captain)
	assert.Equal(t, capt.Username, views[0].Captain.Username)
}

func TestListOrphanedAnnouncement(t *testing.T) {
	db := testDB(t)
	svc := NewAnnouncementService(db)
	ctx := context.Background()

	house := createHouse(t, db, "An-Naml", 0)
	capt := createCaptain(t, db, "naml", "pw", house.ID)

	_, err := svc.Create(ctx, &capt, model.AnnouncementRequest{Title: "legacy", Content: "body"})
	require.NoError(t, err)

	// Captain removed: announcement stays, captain reference goes null.
	require.NoError(t, db.Model(&model.Announcement{}).
		Where("captain_id = ?", capt.ID).
		Update("captain_id", nil).Error)
	require.NoError(t, db.Delete(&model.Captain{}, capt.ID).Error)

	views, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Captain)
	assert.Equal(t, "legacy", views[0].Title)
}

func TestOwnedBy(t *testing.T) {
	db := testDB(t)
	svc := NewAnnouncementService(db)
	ctx := context.Background()

	house := createHouse(t, db, "Al-Ghuraab", 0)
	mine := createCaptain(t, db, "ghuraab", "pw", house.ID)
	other := createCaptain(t, db, "rival", "pw", house.ID)

	_, err := svc.Create(ctx, &mine, model.AnnouncementRequest{Title: "a", Content: "body"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &mine, model.AnnouncementRequest{Title: "b", Content: "body"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &other, model.AnnouncementRequest{Title: "theirs", Content: "body"})
	require.NoError(t, err)

	owned, err := svc.OwnedBy(ctx, mine.ID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "b", owned[0].Title)
	assert.Equal(t, "a", owned[1].Title)
}
