package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"house-points/internal/config"
	"house-points/internal/logger"
	"house-points/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	configFile := flag.String("config", "", "config file path")
	password := flag.String("password", "tes123", "password for every seeded login")
	check := flag.Bool("check", false, "report table counts and ledger drift instead of seeding")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := model.AutoMigrate(db); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	if *check {
		if err := runCheck(db); err != nil {
			slog.Error("check failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := seed(db, *password); err != nil {
		slog.Error("seed failed", "err", err)
		os.Exit(1)
	}
	slog.Info("seed completed")
}

// seed is idempotent: every insert is guarded by an existence check, so
// re-running never duplicates rows.
func seed(db *gorm.DB, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	var anyAdmin model.Admin
	if err := db.First(&anyAdmin).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		admin := model.Admin{Name: "System Admin", Username: "admin", PasswordHash: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("query admins: %w", err)
	}

	houses := map[string]model.House{}
	for _, hs := range houseSeeds {
		var h model.House
		err := db.Where("name = ?", hs.Name).First(&h).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h = model.House{Name: hs.Name, Description: hs.Description, LogoURL: hs.LogoURL}
			if err := db.Create(&h).Error; err != nil {
				return fmt.Errorf("create house %s: %w", hs.Name, err)
			}
		} else if err != nil {
			return fmt.Errorf("query house %s: %w", hs.Name, err)
		}
		houses[hs.Name] = h
	}

	captains := map[string]model.Captain{}
	for _, cs := range captainSeeds {
		var c model.Captain
		err := db.Where("username = ?", cs.Username).First(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c = model.Captain{
				Name: cs.Name, Username: cs.Username,
				PasswordHash: string(hash), HouseID: houses[cs.House].ID,
			}
			if err := db.Create(&c).Error; err != nil {
				return fmt.Errorf("create captain %s: %w", cs.Username, err)
			}
		} else if err != nil {
			return fmt.Errorf("query captain %s: %w", cs.Username, err)
		}
		captains[cs.Username] = c
	}

	for _, as := range advisorSeeds {
		var a model.Advisor
		err := db.Where("username = ?", as.Username).First(&a).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a = model.Advisor{
				Name: as.Name, Role: as.Role,
				Bio:      fmt.Sprintf("%s supervises and guides house members.", as.Name),
				Username: as.Username, PasswordHash: string(hash),
				HouseID: houses[as.House].ID,
			}
			if err := db.Create(&a).Error; err != nil {
				return fmt.Errorf("create advisor %s: %w", as.Username, err)
			}
		} else if err != nil {
			return fmt.Errorf("query advisor %s: %w", as.Username, err)
		}
	}

	for _, ms := range memberSeeds {
		houseID := houses[ms.House].ID
		var m model.Member
		err := db.Where("name = ? AND house_id = ?", ms.Name, houseID).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m = model.Member{Name: ms.Name, Role: ms.Role, HouseID: houseID}
			if err := db.Create(&m).Error; err != nil {
				return fmt.Errorf("create member %s: %w", ms.Name, err)
			}
		} else if err != nil {
			return fmt.Errorf("query member %s: %w", ms.Name, err)
		}
	}

	for _, h := range houses {
		for _, ach := range achievementSeeds {
			var a model.Achievement
			err := db.Where("name = ? AND house_id = ?", ach.Name, h.ID).First(&a).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				a = model.Achievement{Name: ach.Name, Description: ach.Description, HouseID: h.ID}
				if err := db.Create(&a).Error; err != nil {
					return fmt.Errorf("create achievement %s: %w", ach.Name, err)
				}
			} else if err != nil {
				return fmt.Errorf("query achievement %s: %w", ach.Name, err)
			}
		}
	}

	for _, c := range captains {
		for _, ann := range announcementSeeds {
			var existing model.Announcement
			err := db.Where("title = ? AND captain_id = ?", ann.Title, c.ID).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				captainID := c.ID
				a := model.Announcement{
					Title: ann.Title, Content: ann.Content,
					CreatedAt: time.Now().UTC(),
					HouseID:   c.HouseID, CaptainID: &captainID,
				}
				if err := db.Create(&a).Error; err != nil {
					return fmt.Errorf("create announcement %s: %w", ann.Title, err)
				}
			} else if err != nil {
				return fmt.Errorf("query announcement %s: %w", ann.Title, err)
			}
		}
	}

	return nil
}

// runCheck prints table counts and verifies each house counter against the
// sum over its ledger. Drift means the counter needs manual repair.
func runCheck(db *gorm.DB) error {
	tables := []struct {
		name  string
		model any
	}{
		{"admins", &model.Admin{}},
		{"houses", &model.House{}},
		{"captains", &model.Captain{}},
		{"advisors", &model.Advisor{}},
		{"members", &model.Member{}},
		{"achievements", &model.Achievement{}},
		{"announcements", &model.Announcement{}},
		{"point_transactions", &model.PointTransaction{}},
	}
	for _, t := range tables {
		var n int64
		if err := db.Model(t.model).Count(&n).Error; err != nil {
			return fmt.Errorf("count %s: %w", t.name, err)
		}
		fmt.Printf("%-20s %d\n", t.name, n)
	}

	var houses []model.House
	if err := db.Order("name ASC").Find(&houses).Error; err != nil {
		return fmt.Errorf("query houses: %w", err)
	}
	drift := false
	for _, h := range houses {
		var sum int64
		err := db.Model(&model.PointTransaction{}).
			Where("house_id = ?", h.ID).
			Select("COALESCE(SUM(points_change), 0)").
			Scan(&sum).Error
		if err != nil {
			return fmt.Errorf("sum ledger for house %d: %w", h.ID, err)
		}
		if int(sum) != h.HousePoints {
			drift = true
			fmt.Printf("DRIFT %s: counter=%d ledger=%d\n", h.Name, h.HousePoints, sum)
		}
	}
	if !drift {
		fmt.Println("ledger check: all house counters match")
	}
	return nil
}
