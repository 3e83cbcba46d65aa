package service

import (
	"fmt"
	"strings"
	"testing"

	"house-points/internal/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testDB opens an isolated in-memory database named after the test so
// parallel tests never share state.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func hashPassword(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(h)
}

func createHouse(t *testing.T, db *gorm.DB, name string, points int) model.House {
	t.Helper()
	h := model.House{Name: name, Description: name + " house", HousePoints: points}
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("create house: %v", err)
	}
	return h
}

func createAdmin(t *testing.T, db *gorm.DB, username, password string) model.Admin {
	t.Helper()
	a := model.Admin{Name: "Admin " + username, Username: username, PasswordHash: hashPassword(t, password)}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return a
}

func createCaptain(t *testing.T, db *gorm.DB, username, password string, houseID int) model.Captain {
	t.Helper()
	c := model.Captain{Name: "Captain " + username, Username: username, PasswordHash: hashPassword(t, password), HouseID: houseID}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create captain: %v", err)
	}
	return c
}
