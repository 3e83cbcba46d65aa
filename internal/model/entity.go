package model

import "time"

type House struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:150;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	LogoURL     string `gorm:"size:500" json:"logo_url,omitempty"`
	HousePoints int    `gorm:"default:0" json:"points"`
}

type Admin struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:150" json:"name"`
	Username     string `gorm:"size:150;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"size:256" json:"-"`
}

type Captain struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:150" json:"name"`
	Username     string `gorm:"size:150;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"size:256" json:"-"`
	HouseID      int    `gorm:"index" json:"house_id"`
}

type Member struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:150" json:"name"`
	Role    string `gorm:"size:150" json:"role"`
	HouseID int    `gorm:"index" json:"house_id"`
}

type Advisor struct {
	ID           int    `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:150" json:"name"`
	Role         string `gorm:"size:150" json:"role"`
	Bio          string `gorm:"type:text" json:"bio"`
	Username     string `gorm:"size:150;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"size:256" json:"-"`
	HouseID      int    `gorm:"index" json:"house_id"`
}

type Achievement struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:150" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	HouseID     int    `gorm:"index" json:"house_id"`
}

// CaptainID is nullable so announcements survive captain removal.
type Announcement struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	ImageURL  string    `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	HouseID   int       `gorm:"index" json:"house_id"`
	CaptainID *int      `gorm:"index" json:"captain_id"`

	House   House    `gorm:"foreignKey:HouseID" json:"-"`
	Captain *Captain `gorm:"foreignKey:CaptainID;constraint:OnDelete:SET NULL" json:"-"`
}

// PointTransaction is an append-only ledger row. House.HousePoints is a
// materialized sum over these rows, maintained in the same DB transaction.
type PointTransaction struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	PointsChange int       `json:"points_change"`
	Reason       string    `gorm:"size:255" json:"reason"`
	Timestamp    time.Time `gorm:"index" json:"timestamp"`
	HouseID      int       `gorm:"index" json:"house_id"`
	AdminID      *int      `gorm:"index" json:"admin_id"`

	House House  `gorm:"foreignKey:HouseID" json:"-"`
	Admin *Admin `gorm:"foreignKey:AdminID;constraint:OnDelete:SET NULL" json:"-"`
}

func (House) TableName() string            { return "houses" }
func (Admin) TableName() string            { return "admins" }
func (Captain) TableName() string          { return "captains" }
func (Member) TableName() string           { return "members" }
func (Advisor) TableName() string          { return "advisors" }
func (Achievement) TableName() string      { return "achievements" }
func (Announcement) TableName() string     { return "announcements" }
func (PointTransaction) TableName() string { return "point_transactions" }
