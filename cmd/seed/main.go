package main

import (
	"flag"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"socialhub/pkg/config"
	"socialhub/pkg/database"
	"socialhub/pkg/logger"
	"socialhub/pkg/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedPassword = "password123"

func main() {
	var users, postsPerUser int
	flag.IntVar(&users, "users", 10, "Number of generated users besides the demo accounts")
	flag.IntVar(&postsPerUser, "posts", 3, "Posts per user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedDatabase(db, users, postsPerUser, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, users, postsPerUser int, log *logger.Logger) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	accounts := []models.User{
		{Username: "alice", Email: "alice@test.com", Bio: "Demo account"},
		{Username: "bob", Email: "bob@test.com", Bio: "Demo account"},
	}
	for i := 0; i < users; i++ {
		accounts = append(accounts, models.User{
			Username: fakeUsername(),
			Email:    gofakeit.Email(),
			Bio:      truncate(gofakeit.HipsterSentence(8), 160),
		})
	}

	userIDs := make([]string, 0, len(accounts))
	for i := range accounts {
		user := &accounts[i]
		user.Password = string(hashedPassword)

		var existing models.User
		if err := db.Where("email = ? OR username = ?", user.Email, user.Username).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", user.Username)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	var postIDs []string
	for _, authorID := range userIDs {
		for i := 0; i < postsPerUser; i++ {
			post := &models.Post{
				AuthorID: authorID,
				Content:  truncate(gofakeit.Sentence(gofakeit.Number(4, 30)), models.MaxPostLength),
				Media:    datatypes.JSONSlice[models.MediaItem]{},
			}
			if gofakeit.Bool() {
				post.Media = append(post.Media, models.MediaItem{
					Path:      gofakeit.ImageURL(640, 480),
					MediaType: models.MediaImage,
				})
			}
			if err := db.Create(post).Error; err != nil {
				log.Error("Failed to create post for %s: %v", authorID, err)
				continue
			}
			postIDs = append(postIDs, post.ID)
		}
	}
	log.Info("Created %d posts", len(postIDs))

	follows, likes, comments := 0, 0, 0
	for _, followerID := range userIDs {
		for _, followeeID := range userIDs {
			if followerID == followeeID || gofakeit.Number(0, 2) != 0 {
				continue
			}
			follow := &models.Follow{FollowerID: followerID, FolloweeID: followeeID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error; err == nil {
				follows++
			}
		}

		for _, postID := range postIDs {
			switch gofakeit.Number(0, 5) {
			case 0:
				like := &models.Like{PostID: postID, UserID: followerID}
				if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err == nil {
					likes++
				}
			case 1:
				comment := &models.Comment{
					PostID:   postID,
					AuthorID: followerID,
					Content:  truncate(gofakeit.Sentence(gofakeit.Number(2, 12)), models.MaxCommentLength),
				}
				if err := db.Create(comment).Error; err == nil {
					comments++
				}
			}
		}
	}

	log.Info("Created %d follows, %d likes, %d comments", follows, likes, comments)
	return nil
}

// fakeUsername keeps generated names inside the 3..30 character window.
func fakeUsername() string {
	name := strings.ToLower(gofakeit.Username())
	if len(name) < 3 {
		name += gofakeit.DigitN(3)
	}
	return truncate(name, 30)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
