// Command create-user provisions an operator account. The registry has
// no self-registration route, so accounts are created out of band:
//
//	go run ./cmd/create-user -email admin@example.edu -name "Admin" -password secret
package main

import (
	"flag"
	"log"

	"classroom-fund-registry/internal/config"
	"classroom-fund-registry/internal/database"
	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/repository"
	"classroom-fund-registry/pkg/utils"
)

func main() {
	email := flag.String("email", "", "user email (unique)")
	name := flag.String("name", "", "full name")
	password := flag.String("password", "", "plain text password")
	inactive := flag.Bool("inactive", false, "create the account deactivated")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.LoadConfig()
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        *email,
		PasswordHash: hash,
		FullName:     *name,
		IsActive:     !*inactive,
	}

	if err := repository.NewUserRepo(db).CreateUser(user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("Created user %s (id=%d, active=%t)", user.Email, user.ID, user.IsActive)
}
