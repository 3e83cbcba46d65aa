package service

import (
	"context"
	"testing"

	"house-points/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByName(t *testing.T) {
	db := testDB(t)
	svc := NewHouseService(db)

	createHouse(t, db, "An-Nun", 5)
	createHouse(t, db, "Al-Adiyat", 20)
	createHouse(t, db, "An-Nahl", 10)

	houses, err := svc.ListByName(context.Background())
	require.NoError(t, err)
	require.Len(t, houses, 3)
	assert.Equal(t, "Al-Adiyat", houses[0].Name)
	assert.Equal(t, "An-Nahl", houses[1].Name)
	assert.Equal(t, "An-Nun", houses[2].Name)
}

func TestRankedOrderAndRanks(t *testing.T) {
	db := testDB(t)
	svc := NewHouseService(db)

	createHouse(t, db, "An-Nun", 5)
	createHouse(t, db, "Al-Adiyat", 30)
	createHouse(t, db, "An-Nahl", 10)
	createHouse(t, db, "Al-Hudhud", 20)

	ranked, err := svc.Ranked(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Points, r.Points)
		}
	}
	assert.Equal(t, "Al-Adiyat", ranked[0].Name)
	assert.Equal(t, "An-Nun", ranked[3].Name)
}

// Equal points break on id ascending, so the order is stable across calls.
func TestRankedTieBreak(t *testing.T) {
	db := testDB(t)
	svc := NewHouseService(db)

	first := createHouse(t, db, "Zeta", 10)
	second := createHouse(t, db, "Alpha", 10)

	ranked, err := svc.Ranked(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, first.Name, ranked[0].Name)
	assert.Equal(t, second.Name, ranked[1].Name)
}

func TestMembersGrouped(t *testing.T) {
	db := testDB(t)
	svc := NewHouseService(db)
	ctx := context.Background()

	nahl := createHouse(t, db, "An-Nahl", 0)
	nun := createHouse(t, db, "An-Nun", 0)
	require.NoError(t, db.Create(&model.Member{Name: "Ali", Role: "Member", HouseID: nahl.ID}).Error)
	require.NoError(t, db.Create(&model.Member{Name: "Amina", Role: "Member", HouseID: nahl.ID}).Error)
	require.NoError(t, db.Create(&model.Member{Name: "Umar", Role: "Member", HouseID: nun.ID}).Error)

	groups, err := svc.MembersGrouped(ctx, "")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "An-Nahl", groups[0].House.Name)
	assert.Len(t, groups[0].Members, 2)
	assert.Len(t, groups[1].Members, 1)

	groups, err = svc.MembersGrouped(ctx, "An-Nun")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Umar", groups[0].Members[0].Name)
}

// An unknown house name errors; it never degrades to an empty result.
func TestMembersGroupedUnknownHouse(t *testing.T) {
	db := testDB(t)
	svc := NewHouseService(db)

	createHouse(t, db, "An-Nahl", 0)

	_, err := svc.MembersGrouped(context.Background(), "Unknown")
	assert.ErrorIs(t, err, ErrHouseNotFound)
}

func TestGetHouse(t *testing.T) {
	db := testDB(t)
	svc := NewHouseService(db)

	house := createHouse(t, db, "Al-Ghuraab", 7)

	got, err := svc.Get(context.Background(), house.ID)
	require.NoError(t, err)
	assert.Equal(t, house.Name, got.Name)
	assert.Equal(t, 7, got.HousePoints)

	_, err = svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrHouseNotFound)
}
