package service

import (
	"context"
	"errors"
	"fmt"

	"house-points/internal/model"

	"gorm.io/gorm"
)

type HouseService struct{ db *gorm.DB }

func NewHouseService(db *gorm.DB) *HouseService { return &HouseService{db: db} }

func (s *HouseService) Get(ctx context.Context, id int) (*model.House, error) {
	var h model.House
	if err := s.db.WithContext(ctx).First(&h, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, fmt.Errorf("load house %d: %w", id, err)
	}
	return &h, nil
}

// ListByName returns all houses in alphabetical order.
func (s *HouseService) ListByName(ctx context.Context) ([]model.HouseSummary, error) {
	var houses []model.House
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("query houses: %w", err)
	}
	return summaries(houses), nil
}

// ListByPoints returns all houses ordered by points descending. Ties break on
// id ascending so the order is deterministic.
func (s *HouseService) ListByPoints(ctx context.Context) ([]model.HouseSummary, error) {
	var houses []model.House
	if err := s.db.WithContext(ctx).Order("house_points DESC, id ASC").Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("query houses: %w", err)
	}
	return summaries(houses), nil
}

// Ranked annotates the points-descending order with 1-based ranks.
func (s *HouseService) Ranked(ctx context.Context) ([]model.RankedHouse, error) {
	houses, err := s.ListByPoints(ctx)
	if err != nil {
		return nil, err
	}
	ranked := make([]model.RankedHouse, 0, len(houses))
	for i, h := range houses {
		ranked = append(ranked, model.RankedHouse{
			Rank:        i + 1,
			Name:        h.Name,
			Points:      h.Points,
			Description: h.Description,
			LogoURL:     h.LogoURL,
		})
	}
	return ranked, nil
}

// MembersGrouped lists members grouped per house. A non-empty houseName
// restricts the result to that house and errors when no such house exists;
// an unknown name is never a silent empty result.
func (s *HouseService) MembersGrouped(ctx context.Context, houseName string) ([]model.MemberGroup, error) {
	var houses []model.House
	if houseName != "" {
		var h model.House
		err := s.db.WithContext(ctx).Where("name = ?", houseName).First(&h).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load house %q: %w", houseName, err)
		}
		houses = []model.House{h}
	} else {
		if err := s.db.WithContext(ctx).Order("name ASC").Find(&houses).Error; err != nil {
			return nil, fmt.Errorf("query houses: %w", err)
		}
	}

	groups := make([]model.MemberGroup, 0, len(houses))
	for _, h := range houses {
		members, err := s.MembersOf(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		groups = append(groups, model.NewMemberGroup(h, members))
	}
	return groups, nil
}

func (s *HouseService) MembersOf(ctx context.Context, houseID int) ([]model.MemberInfo, error) {
	var members []model.Member
	err := s.db.WithContext(ctx).Where("house_id = ?", houseID).Order("id ASC").Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("query members of house %d: %w", houseID, err)
	}
	infos := make([]model.MemberInfo, 0, len(members))
	for _, m := range members {
		infos = append(infos, model.MemberInfo{ID: m.ID, Name: m.Name, Role: m.Role})
	}
	return infos, nil
}

func summaries(houses []model.House) []model.HouseSummary {
	out := make([]model.HouseSummary, 0, len(houses))
	for _, h := range houses {
		out = append(out, model.HouseSummary{
			ID:          h.ID,
			Name:        h.Name,
			Points:      h.HousePoints,
			Description: h.Description,
			LogoURL:     h.LogoURL,
		})
	}
	return out
}
