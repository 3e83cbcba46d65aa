package model

import "time"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserInfo struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	Role    Role     `json:"role"`
	User    UserInfo `json:"user"`
}

type MeResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	HouseID  *int   `json:"house_id"`
}

// PointsRequest carries a positive magnitude; the sign is chosen by the
// endpoint (add vs deduct), never by the client.
type PointsRequest struct {
	HouseID int    `json:"house_id"`
	Points  int    `json:"points"`
	Reason  string `json:"reason"`
}

type AnnouncementRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type HouseSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url,omitempty"`
}

type RankedHouse struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url,omitempty"`
}

type HouseRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CaptainRef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type AdminRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MemberInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type MemberGroup struct {
	House   houseBrief   `json:"house"`
	Members []MemberInfo `json:"members"`
}

type houseBrief struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewMemberGroup(h House, members []MemberInfo) MemberGroup {
	return MemberGroup{
		House:   houseBrief{ID: h.ID, Name: h.Name, Description: h.Description},
		Members: members,
	}
}

// Captain is null when the authoring captain was removed.
type AnnouncementView struct {
	ID        int         `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	ImageURL  string      `json:"image_url,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	House     HouseRef    `json:"house"`
	Captain   *CaptainRef `json:"captain"`
}

type TransactionView struct {
	ID           int       `json:"id"`
	House        HouseRef  `json:"house"`
	PointsChange int       `json:"points_change"`
	Reason       string    `json:"reason"`
	Timestamp    time.Time `json:"timestamp"`
	Admin        *AdminRef `json:"admin"`
}

type AdminDashboard struct {
	Houses             []HouseSummary    `json:"houses"`
	RecentTransactions []TransactionView `json:"recent_transactions"`
}

type OwnAnnouncement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CaptainDashboard struct {
	House           HouseSummary      `json:"house"`
	Members         []MemberInfo      `json:"members"`
	MyAnnouncements []OwnAnnouncement `json:"my_announcements"`
}
