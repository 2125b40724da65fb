package main

import (
	"fmt"
	"log"
	"os"

	"voicebox/backend/internal/config"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Operator CLI for the actions that deliberately have no API surface:
// approving freshly signed-up admin accounts, and banning or reactivating
// students from the shell.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})

	storageSvc := storage.NewStorageService(db, rdb)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <approve|ban|unban> <user_id>")
		fmt.Println("       admin list-pending")
		os.Exit(1)
	}

	command := os.Args[1]
	if command != "list-pending" && len(os.Args) < 3 {
		fmt.Printf("Usage: admin %s <user_id>\n", command)
		os.Exit(1)
	}

	switch command {
	case "list-pending":
		admins, err := storageSvc.ListUsersByRole(models.RoleAdmin)
		if err != nil {
			log.Fatalf("Error listing admins: %v", err)
		}
		for _, a := range admins {
			if !a.IsApproved {
				fmt.Printf("%s\t%s\t%s\n", a.ID, a.FullName, a.Email)
			}
		}
	case "approve":
		userID := os.Args[2]
		if err := approveAdmin(storageSvc, userID); err != nil {
			log.Fatalf("Error approving admin: %v", err)
		}
		fmt.Printf("Admin account %s approved.\n", userID)
	case "ban":
		userID := os.Args[2]
		if err := banStudent(storageSvc, userID); err != nil {
			log.Fatalf("Error banning user: %v", err)
		}
		fmt.Printf("User %s has been banned.\n", userID)
	case "unban":
		userID := os.Args[2]
		if err := unbanStudent(storageSvc, userID); err != nil {
			log.Fatalf("Error unbanning user: %v", err)
		}
		fmt.Printf("User %s has been reactivated.\n", userID)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func approveAdmin(s storage.Storage, userID string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleAdmin {
		return fmt.Errorf("user %s is not an admin account", userID)
	}
	return s.SetUserApproval(userID, true)
}

func banStudent(s storage.Storage, userID string) error {
	if err := s.SetUserApproval(userID, false); err != nil {
		return err
	}
	return s.RevokeUser(userID)
}

func unbanStudent(s storage.Storage, userID string) error {
	if err := s.SetUserApproval(userID, true); err != nil {
		return err
	}
	return s.ClearRevocation(userID)
}
