package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"house-points/internal/model"

	"gorm.io/gorm"
)

type PointsService struct{ db *gorm.DB }

func NewPointsService(db *gorm.DB) *PointsService { return &PointsService{db: db} }

// Add credits a house. The caller supplies a positive magnitude; the sign is
// fixed by the operation, never by client input.
func (s *PointsService) Add(ctx context.Context, houseID, points int, reason string, adminID int) (*model.House, error) {
	if err := checkPointsInput(houseID, points, reason); err != nil {
		return nil, err
	}
	return s.applyDelta(ctx, houseID, points, strings.TrimSpace(reason), adminID)
}

// Deduct debits a house; same validation, negated delta.
func (s *PointsService) Deduct(ctx context.Context, houseID, points int, reason string, adminID int) (*model.House, error) {
	if err := checkPointsInput(houseID, points, reason); err != nil {
		return nil, err
	}
	return s.applyDelta(ctx, houseID, -points, strings.TrimSpace(reason), adminID)
}

func checkPointsInput(houseID, points int, reason string) error {
	if houseID == 0 || points == 0 || strings.TrimSpace(reason) == "" {
		return validationf("All fields are required")
	}
	if points < 0 {
		return validationf("Points must be a positive integer")
	}
	return nil
}

// applyDelta moves the materialized counter and appends the ledger row in one
// DB transaction. The relative UPDATE serializes concurrent writers on the
// house row, so two admins adjusting the same house cannot lose updates.
func (s *PointsService) applyDelta(ctx context.Context, houseID, delta int, reason string, adminID int) (*model.House, error) {
	var house model.House
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&house, houseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHouseNotFound
			}
			return fmt.Errorf("load house %d: %w", houseID, err)
		}

		if err := tx.Model(&model.House{}).Where("id = ?", houseID).
			UpdateColumn("house_points", gorm.Expr("house_points + ?", delta)).Error; err != nil {
			return fmt.Errorf("update house points: %w", err)
		}

		txn := model.PointTransaction{
			PointsChange: delta,
			Reason:       reason,
			Timestamp:    time.Now().UTC(),
			HouseID:      houseID,
			AdminID:      &adminID,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return fmt.Errorf("insert point transaction: %w", err)
		}

		return tx.First(&house, houseID).Error
	})
	if err != nil {
		return nil, err
	}
	return &house, nil
}

// Recent returns the latest ledger rows with house and admin summaries.
func (s *PointsService) Recent(ctx context.Context, limit int) ([]model.TransactionView, error) {
	var txns []model.PointTransaction
	err := s.db.WithContext(ctx).
		Preload("House").Preload("Admin").
		Order("timestamp DESC, id DESC").Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	views := make([]model.TransactionView, 0, len(txns))
	for _, t := range txns {
		v := model.TransactionView{
			ID:           t.ID,
			House:        model.HouseRef{ID: t.House.ID, Name: t.House.Name},
			PointsChange: t.PointsChange,
			Reason:       t.Reason,
			Timestamp:    t.Timestamp,
		}
		if t.Admin != nil {
			v.Admin = &model.AdminRef{ID: t.Admin.ID, Name: t.Admin.Name}
		}
		views = append(views, v)
	}
	return views, nil
}
