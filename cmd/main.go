package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"voicebox/backend/internal/announcement"
	"voicebox/backend/internal/api/handler"
	"voicebox/backend/internal/auth"
	"voicebox/backend/internal/complaint"
	"voicebox/backend/internal/config"
	"voicebox/backend/internal/contact"
	"voicebox/backend/internal/discussion"
	"voicebox/backend/internal/models"
	"voicebox/backend/internal/notify"
	"voicebox/backend/internal/petition"
	"voicebox/backend/internal/storage"
	"voicebox/backend/internal/threadhub"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Comment{},
		&models.Petition{},
		&models.Announcement{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting VoiceBox Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	hub := threadhub.NewManagerService(s)

	var notifier notify.Notifier = notify.Noop{}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != "" {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		notifier = tg
	}

	authSvc := auth.NewService(s, cfg)
	complaints := complaint.NewService(s)
	disc := discussion.NewService(s, hub)
	petitions := petition.NewService(s)
	announcements := announcement.NewService(s)
	contactSvc := contact.NewService(s)

	go hub.Run()

	r := gin.Default()
	h := handler.NewHandler(authSvc, complaints, disc, petitions, announcements, contactSvc, hub, notifier)

	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/signin", h.SignIn)
	r.POST("/contact", h.CreateContactMessage)

	authed := r.Group("/", h.RequireAuth())
	{
		authed.GET("/me", h.Me)

		authed.POST("/complaints", h.SubmitComplaint)
		authed.GET("/complaints/mine", h.ListMyComplaints)
		authed.GET("/complaints/:id", h.GetComplaint)
		authed.POST("/complaints/:id/comments", h.PostComment)
		authed.GET("/complaints/:id/comments", h.GetThread)
		authed.GET("/ws/complaints/:id", h.ServeThreadSocket)

		authed.POST("/petitions", h.CreatePetition)
		authed.GET("/petitions", h.ListPetitions)
		authed.GET("/petitions/:id", h.GetPetition)
		authed.POST("/petitions/:id/sign", h.SignPetition)
		authed.GET("/petitions/stats", h.PetitionStats)

		authed.GET("/announcements", h.ListAnnouncements)
	}

	admin := r.Group("/admin", h.RequireAuth(), h.RequireAdmin())
	{
		admin.GET("/complaints", h.ListAllComplaints)
		admin.PATCH("/complaints/:id/status", h.SetComplaintStatus)
		admin.GET("/complaints/stats", h.ComplaintStats)

		admin.POST("/announcements", h.PostAnnouncement)
		admin.DELETE("/announcements/:id", h.DeleteAnnouncement)

		admin.GET("/students", h.ListStudents)
		admin.POST("/students/:id/ban", h.BanStudent)
		admin.POST("/students/:id/reactivate", h.ReactivateStudent)

		admin.GET("/contact-messages", h.ListContactMessages)
		admin.POST("/contact-messages/:id/read", h.MarkContactRead)
	}

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
