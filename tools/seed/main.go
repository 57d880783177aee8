package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// listing is the seed row shape for posts
type listing struct {
	Title    string
	Price    int
	Address  string
	City     string
	Bedroom  int
	Bathroom int
	Type     string
	Property string
	Desc     string
}

var listings = []listing{
	{"Sunny 2BR Apartment", 1800, "412 Elm Street", "New York", 2, 1, "rent", "apartment", "Bright two-bedroom close to the subway."},
	{"Renovated Brownstone", 745000, "88 York Ave", "Brooklyn", 3, 2, "buy", "house", "Fully renovated brownstone with original details."},
	{"Lakeview Condo", 2100, "7 Harbor Road", "Chicago", 1, 1, "rent", "condo", "Corner unit with lake views and a gym."},
	{"Quiet Family House", 365000, "15 Cedar Court", "Austin", 4, 2, "buy", "house", "Cul-de-sac home with a fenced backyard."},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	connStr := os.Getenv("DB_URL")
	if connStr == "" {
		log.Fatal("DB_URL is required")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("✅ Successfully connected to database")

	// Seed agent to own the listings
	var agentID int
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, role, created_at, updated_at)
		VALUES ('demo_agent', 'agent@example.com', '$2a$10$seedplaceholderhashvalue000000000000000000000000000000', 'agent', NOW(), NOW())
		ON CONFLICT (username) DO UPDATE SET updated_at = NOW()
		RETURNING id`).Scan(&agentID)
	if err != nil {
		log.Fatal("Failed to seed agent:", err)
	}

	seeded := 0
	for _, l := range listings {
		var postID int
		err := db.QueryRow(`
			INSERT INTO posts (title, price, images, address, city, bedroom, bathroom, type, property, user_id, created_at, updated_at)
			VALUES ($1, $2, '[]', $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			RETURNING id`,
			l.Title, l.Price, l.Address, l.City, l.Bedroom, l.Bathroom, l.Type, l.Property, agentID).Scan(&postID)
		if err != nil {
			log.Printf("⚠️ Failed to seed post %q: %v", l.Title, err)
			continue
		}

		if _, err := db.Exec(`
			INSERT INTO post_details (post_id, "desc") VALUES ($1, $2)
			ON CONFLICT (post_id) DO NOTHING`, postID, l.Desc); err != nil {
			log.Printf("⚠️ Failed to seed detail for post %d: %v", postID, err)
		}
		seeded++
	}

	log.Printf("✅ Seeded %d listings owned by agent %d", seeded, agentID)
}
