package seed

import (
	"log"

	"github.com/mlanda98/social-media/models"

	"gorm.io/gorm"
)

var users = []models.User{
	{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password",
	},
	{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password",
	},
	{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "password",
	},
}

var posts = []models.Post{
	{
		Content: "Hello, world! First post on here.",
	},
	{
		Content: "Trying out the new feed. Looking good so far.",
	},
	{
		Content: "Does anyone have book recommendations for the weekend?",
	},
}

// Load wipes and reseeds the development database. Never call this
// against production data.
func Load(db *gorm.DB) {
	err := db.Migrator().DropTable(
		&models.ResetPassword{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("cannot drop tables: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.ResetPassword{},
	)
	if err != nil {
		log.Fatalf("cannot migrate tables: %v", err)
	}

	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("cannot seed users table: %v", err)
		}
		posts[i].UserID = users[i].ID
		if err := db.Create(&posts[i]).Error; err != nil {
			log.Fatalf("cannot seed posts table: %v", err)
		}
	}

	// alice follows bob (accepted), carol has a pending request to alice.
	follows := []models.Follow{
		{FollowerID: users[0].ID, FollowedID: users[1].ID, Status: models.FollowStatusAccepted},
		{FollowerID: users[2].ID, FollowedID: users[0].ID, Status: models.FollowStatusPending},
	}
	for i := range follows {
		if err := db.Create(&follows[i]).Error; err != nil {
			log.Fatalf("cannot seed follows table: %v", err)
		}
	}
}
