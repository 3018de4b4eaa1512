package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"devconnector/internal/config"
	"devconnector/internal/db"
	"devconnector/internal/model"
	"devconnector/internal/repository"
	"devconnector/internal/service"
)

// seedUser pairs a demo account with its profile and first post.
type seedUser struct {
	name     string
	email    string
	password string
	handle   string
	status   string
	skills   []string
	postText string
}

var seedUsers = []seedUser{
	{
		name:     "Ada Developer",
		email:    "ada@example.com",
		password: "password123",
		handle:   "ada",
		status:   "Senior Developer",
		skills:   []string{"Go", "MongoDB", "Redis"},
		postText: "Hello from the seeded feed, this is my first post.",
	},
	{
		name:     "Grace Builder",
		email:    "grace@example.com",
		password: "password123",
		handle:   "grace",
		status:   "Backend Engineer",
		skills:   []string{"HTML", "CSS", "JS"},
		postText: "Second seeded account checking in with a post.",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	database := client.Database(cfg.MongoDB)
	log.Println("Connected to database")

	if err := db.EnsureIndexes(context.Background(), database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	postRepo := repository.NewPostRepository(database)

	ctx := context.Background()
	created := 0
	for _, seed := range seedUsers {
		if _, err := userRepo.FindByEmail(ctx, seed.email); err == nil {
			log.Printf("Skipping %s: already seeded", seed.email)
			continue
		} else if err != mongo.ErrNoDocuments {
			log.Fatalf("Failed to check %s: %v", seed.email, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", seed.email, err)
		}

		user := &model.User{
			ID:       primitive.NewObjectID(),
			Name:     seed.name,
			Email:    seed.email,
			Password: string(hashed),
			Avatar:   service.GravatarURL(seed.email),
			Date:     time.Now().UTC(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", seed.email, err)
		}

		profile := &model.Profile{
			ID:         primitive.NewObjectID(),
			User:       user.ID,
			Handle:     seed.handle,
			Status:     seed.status,
			Skills:     seed.skills,
			Experience: []model.Experience{},
			Education:  []model.Education{},
			Date:       time.Now().UTC(),
		}
		if err := profileRepo.Create(ctx, profile); err != nil {
			log.Fatalf("Failed to create profile %s: %v", seed.handle, err)
		}

		post := &model.Post{
			ID:       primitive.NewObjectID(),
			User:     user.ID,
			Text:     seed.postText,
			Name:     user.Name,
			Avatar:   user.Avatar,
			Likes:    []model.Like{},
			Comments: []model.Comment{},
			Date:     time.Now().UTC(),
		}
		if err := postRepo.Create(ctx, post); err != nil {
			log.Fatalf("Failed to create post for %s: %v", seed.email, err)
		}

		created++
	}

	log.Printf("Seeding complete: %d accounts created", created)
}
