// Command seed populates the database with the fixed task statuses and a
// handful of demo users, each owning a few tasks. Safe to run repeatedly.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/model"
)

const (
	demoUsers        = 10
	tasksPerUser     = 3
	demoUserPassword = "password123"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Status{}, &model.Task{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	statuses, err := seedStatuses(gormDB)
	if err != nil {
		log.Fatalf("seed statuses: %v", err)
	}
	log.Printf("statuses in place: %d", len(statuses))

	users, err := seedUsers(gormDB)
	if err != nil {
		log.Fatalf("seed users: %v", err)
	}
	log.Printf("demo users in place: %d (password %q)", len(users), demoUserPassword)

	created, err := seedTasks(gormDB, users, statuses)
	if err != nil {
		log.Fatalf("seed tasks: %v", err)
	}
	log.Printf("demo tasks created: %d", created)
}

func seedStatuses(gormDB *gorm.DB) ([]model.Status, error) {
	wanted := []model.Status{
		{Name: "Pendiente", Description: "Estado Pendiente", IdentifierCode: "pending_status"},
		{Name: "Completada", Description: "Estado Completada", IdentifierCode: "completed_status"},
	}
	for i := range wanted {
		if err := gormDB.
			Where(model.Status{IdentifierCode: wanted[i].IdentifierCode}).
			FirstOrCreate(&wanted[i]).Error; err != nil {
			return nil, err
		}
	}
	return wanted, nil
}

func seedUsers(gormDB *gorm.DB) ([]model.User, error) {
	hasher := auth.NewPasswordHasher()
	digest, err := hasher.Hash(demoUserPassword)
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, demoUsers)
	for i := 1; i <= demoUsers; i++ {
		user := model.User{
			Name:         fmt.Sprintf("Demo User %d", i),
			Email:        fmt.Sprintf("demo%d@example.com", i),
			PasswordHash: digest,
		}
		if err := gormDB.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func seedTasks(gormDB *gorm.DB, users []model.User, statuses []model.Status) (int, error) {
	created := 0
	for _, user := range users {
		var count int64
		if err := gormDB.Model(&model.Task{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		for i := 1; i <= tasksPerUser; i++ {
			task := model.Task{
				Title:          fmt.Sprintf("Task %d for %s", i, user.Name),
				Description:    "Seeded demo task",
				ExpirationDate: time.Now().AddDate(0, 0, 10+rand.Intn(20)),
				StatusID:       statuses[rand.Intn(len(statuses))].ID,
				UserID:         user.ID,
			}
			if err := gormDB.Create(&task).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
