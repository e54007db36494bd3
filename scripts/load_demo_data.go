package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"ml-league-backend/internal/auth"
	"ml-league-backend/internal/config"
	"ml-league-backend/internal/database"
	"ml-league-backend/internal/database/models"
	"ml-league-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the demo YAML schema
type UserData struct {
	Handle   string `yaml:"handle"`
	Password string `yaml:"password"`
	Admin    bool   `yaml:"admin"`
}

type SubmissionData struct {
	Score float64 `yaml:"score"`
	Week  string  `yaml:"week,omitempty"`
}

type TeamData struct {
	Name        string           `yaml:"name"`
	Member1     string           `yaml:"member1"`
	Member2     string           `yaml:"member2"`
	Member3     string           `yaml:"member3"`
	OwnerHandle string           `yaml:"owner_handle,omitempty"`
	Banned      bool             `yaml:"banned,omitempty"`
	Submissions []SubmissionData `yaml:"submissions,omitempty"`
}

type DemoData struct {
	Users []UserData `yaml:"users"`
	Teams []TeamData `yaml:"teams"`
}

// load_demo_data seeds a development database with users, teams, and
// submissions from a YAML file. Existing records with matching unique fields
// are left untouched, so the loader can be re-run safely.
//
// Usage: go run scripts/load_demo_data.go [demo_data.yaml]
func main() {
	path := "demo_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	var data DemoData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("initialize database: %v", err)
	}

	users := repository.NewUserRepository(db)
	teams := repository.NewTeamRepository(db)
	submissions := repository.NewSubmissionRepository(db)

	created := 0
	for _, u := range data.Users {
		if _, err := users.GetByHandle(u.Handle); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("look up user %q: %v", u.Handle, err)
		}

		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			log.Fatalf("hash password for %q: %v", u.Handle, err)
		}
		if err := users.Create(&models.User{
			Handle:       u.Handle,
			PasswordHash: hash,
			IsAdmin:      u.Admin,
		}); err != nil {
			log.Fatalf("create user %q: %v", u.Handle, err)
		}
		created++
	}
	fmt.Printf("users: %d created\n", created)

	created = 0
	for _, t := range data.Teams {
		if _, err := teams.GetByName(t.Name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("look up team %q: %v", t.Name, err)
		}

		team := &models.Team{
			Name:    t.Name,
			Member1: t.Member1,
			Member2: t.Member2,
			Member3: t.Member3,
			Banned:  t.Banned,
		}

		var owner *models.User
		if t.OwnerHandle != "" {
			owner, err = users.GetByHandle(t.OwnerHandle)
			if err != nil {
				log.Fatalf("owner %q for team %q: %v", t.OwnerHandle, t.Name, err)
			}
			team.OwnerUserID = &owner.ID
		}

		if err := teams.Create(team); err != nil {
			log.Fatalf("create team %q: %v", t.Name, err)
		}

		if owner != nil {
			owner.TeamID = &team.ID
			if err := users.Update(owner); err != nil {
				log.Fatalf("link owner %q: %v", t.OwnerHandle, err)
			}
		}

		for _, sub := range t.Submissions {
			submission := &models.Submission{
				TeamID: team.ID,
				Score:  sub.Score,
			}
			if sub.Week != "" {
				week := sub.Week
				submission.Week = &week
			}
			if err := submissions.CreateWithAggregates(submission); err != nil {
				log.Fatalf("create submission for %q: %v", t.Name, err)
			}
		}
		created++
	}
	fmt.Printf("teams: %d created\n", created)
}
