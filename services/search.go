package services

import (
	"log"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"realestate-server/models"
)

// SearchFilters holds the raw, optional query parameters of a listing
// search. Every field is permissive: values that are empty after trimming,
// the sentinel "any", or numbers that do not parse to a positive value are
// treated as not set rather than as errors.
type SearchFilters struct {
	City     string
	Type     string
	Property string
	Bedroom  string
	MinPrice string
	MaxPrice string
	Sort     string
}

// filterValue normalizes a raw filter parameter: "" after trimming and the
// sentinel "any" both mean "not set".
func filterValue(val string) string {
	val = strings.TrimSpace(val)
	if val == "" || val == "any" {
		return ""
	}
	return val
}

// positiveInt parses a normalized filter value as a positive integer.
// Anything unparsable or non-positive counts as not set.
func positiveInt(val string) (int, bool) {
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// sortOrders maps the accepted sort keys to SQL order clauses. An unknown or
// absent key preserves the store's natural order.
var sortOrders = map[string]string{
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
	"date_asc":   "created_at ASC",
	"date_desc":  "created_at DESC",
}

// Apply adds the set filter dimensions to a posts query. Dimensions combine
// with AND; the city dimension alone matches either the city or the address
// column, case-insensitive substring.
func (f SearchFilters) Apply(db *gorm.DB) *gorm.DB {
	if city := filterValue(f.City); city != "" {
		pattern := "%" + strings.ToLower(city) + "%"
		db = db.Where("LOWER(city) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern)
	}

	if t := filterValue(f.Type); t != "" {
		db = db.Where("type = ?", t)
	}

	if p := filterValue(f.Property); p != "" {
		db = db.Where("property = ?", p)
	}

	if b, ok := positiveInt(filterValue(f.Bedroom)); ok {
		db = db.Where("bedroom = ?", b)
	}

	if min, ok := positiveInt(filterValue(f.MinPrice)); ok {
		db = db.Where("price >= ?", min)
	}

	if max, ok := positiveInt(filterValue(f.MaxPrice)); ok {
		db = db.Where("price <= ?", max)
	}

	if order, ok := sortOrders[filterValue(f.Sort)]; ok {
		db = db.Order(order)
	}

	return db
}

// SampleProvider supplies the representative listings returned when a search
// matches nothing. Injected so tests can swap or disable it.
type SampleProvider interface {
	SamplePosts() []models.Post
}

// SearchService resolves listing searches against the store, falling back to
// sample data instead of surfacing empty results or store failures.
type SearchService struct {
	db      *gorm.DB
	samples SampleProvider
}

// NewSearchService creates a new search service
func NewSearchService(db *gorm.DB, samples SampleProvider) *SearchService {
	return &SearchService{db: db, samples: samples}
}

// Search returns the posts matching all set filter dimensions. The second
// return value is true when the result is fallback sample data, either
// because nothing matched or because the store failed; the search path never
// propagates a store error to the caller.
func (s *SearchService) Search(filters SearchFilters) ([]models.Post, bool) {
	var posts []models.Post
	if err := filters.Apply(s.db.Model(&models.Post{})).Find(&posts).Error; err != nil {
		log.Printf("❌ Listing search failed, serving sample data: %v", err)
		return s.samples.SamplePosts(), true
	}

	if len(posts) == 0 {
		return s.samples.SamplePosts(), true
	}

	return posts, false
}

// IsSaved reports whether the given user has bookmarked the given post.
// A zero user id (anonymous caller) is never saved.
func (s *SearchService) IsSaved(userID, postID uint) bool {
	if userID == 0 {
		return false
	}
	var count int64
	if err := s.db.Model(&models.SavedPost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		log.Printf("❌ Saved-post lookup failed for user %d post %d: %v", userID, postID, err)
		return false
	}
	return count > 0
}
