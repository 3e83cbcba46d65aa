package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"house-points/internal/model"

	"gorm.io/gorm"
)

type AnnouncementService struct{ db *gorm.DB }

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{db: db}
}

const maxTitleLen = 200

// Create scopes the announcement to the authenticated captain; house and
// author are never taken from client input.
func (s *AnnouncementService) Create(ctx context.Context, captain *model.Captain, req model.AnnouncementRequest) (*model.Announcement, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if title == "" || content == "" {
		return nil, validationf("Title and content are required")
	}
	// Characters, not bytes: Arabic titles are twice their rune count in UTF-8.
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, validationf("Title must be less than %d characters", maxTitleLen)
	}

	ann := model.Announcement{
		Title:     title,
		Content:   content,
		ImageURL:  strings.TrimSpace(req.ImageURL),
		CreatedAt: time.Now().UTC(),
		HouseID:   captain.HouseID,
		CaptainID: &captain.ID,
	}
	if err := s.db.WithContext(ctx).Create(&ann).Error; err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}
	return &ann, nil
}

// Delete removes an announcement owned by the captain. Missing id reports
// not-found before ownership is considered.
func (s *AnnouncementService) Delete(ctx context.Context, captainID, announcementID int) error {
	var ann model.Announcement
	if err := s.db.WithContext(ctx).First(&ann, announcementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		return fmt.Errorf("load announcement %d: %w", announcementID, err)
	}
	if ann.CaptainID == nil || *ann.CaptainID != captainID {
		return ErrNotOwner
	}
	if err := s.db.WithContext(ctx).Delete(&ann).Error; err != nil {
		return fmt.Errorf("delete announcement %d: %w", announcementID, err)
	}
	return nil
}

// List returns all announcements newest first with house and captain
// summaries. Captain is null for orphaned announcements.
func (s *AnnouncementService) List(ctx context.Context) ([]model.AnnouncementView, error) {
	var anns []model.Announcement
	err := s.db.WithContext(ctx).
		Preload("House").Preload("Captain").
		Order("created_at DESC, id DESC").
		Find(&anns).Error
	if err != nil {
		return nil, fmt.Errorf("query announcements: %w", err)
	}

	views := make([]model.AnnouncementView, 0, len(anns))
	for _, a := range anns {
		v := model.AnnouncementView{
			ID:        a.ID,
			Title:     a.Title,
			Content:   a.Content,
			ImageURL:  a.ImageURL,
			CreatedAt: a.CreatedAt,
			House:     model.HouseRef{ID: a.House.ID, Name: a.House.Name},
		}
		if a.Captain != nil {
			v.Captain = &model.CaptainRef{ID: a.Captain.ID, Username: a.Captain.Username, Name: a.Captain.Name}
		}
		views = append(views, v)
	}
	return views, nil
}

// OwnedBy lists a captain's announcements newest first.
func (s *AnnouncementService) OwnedBy(ctx context.Context, captainID int) ([]model.OwnAnnouncement, error) {
	var anns []model.Announcement
	err := s.db.WithContext(ctx).
		Where("captain_id = ?", captainID).
		Order("created_at DESC, id DESC").
		Find(&anns).Error
	if err != nil {
		return nil, fmt.Errorf("query captain announcements: %w", err)
	}

	views := make([]model.OwnAnnouncement, 0, len(anns))
	for _, a := range anns {
		views = append(views, model.OwnAnnouncement{
			ID: a.ID, Title: a.Title, Content: a.Content,
			ImageURL: a.ImageURL, CreatedAt: a.CreatedAt,
		})
	}
	return views, nil
}
