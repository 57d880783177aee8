package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"realestate-server/database"
	"realestate-server/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedPosts(t *testing.T, db *gorm.DB, posts ...models.Post) {
	t.Helper()
	for i := range posts {
		require.NoError(t, db.Create(&posts[i]).Error)
	}
}

func testPost(title, city, address string, price, bedroom int, postType models.PostType, property models.PropertyType) models.Post {
	return models.Post{
		Title:    title,
		Price:    price,
		Address:  address,
		City:     city,
		Bedroom:  bedroom,
		Bathroom: 1,
		Type:     postType,
		Property: property,
		UserID:   1,
	}
}

func TestFilterValueNormalization(t *testing.T) {
	assert.Equal(t, "", filterValue(""))
	assert.Equal(t, "", filterValue("   "))
	assert.Equal(t, "", filterValue("any"))
	assert.Equal(t, "Austin", filterValue("Austin"))
	assert.Equal(t, "Austin", filterValue("  Austin  "))
}

func TestPositiveInt(t *testing.T) {
	n, ok := positiveInt("3")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = positiveInt("")
	assert.False(t, ok)
	_, ok = positiveInt("abc")
	assert.False(t, ok)
	_, ok = positiveInt("0")
	assert.False(t, ok)
	_, ok = positiveInt("-5")
	assert.False(t, ok)
}

func TestSearchCitySubstringMatchesCityAndAddress(t *testing.T) {
	db := setupTestDB(t)
	seedPosts(t, db,
		testPost("NYC flat", "New York", "5th Avenue", 2000, 2, models.PostTypeRent, models.PropertyApartment),
		testPost("Jersey flat", "Jersey City", "12 York Ave", 1500, 1, models.PostTypeRent, models.PropertyApartment),
		testPost("Austin house", "Austin", "Cedar Court", 300000, 3, models.PostTypeBuy, models.PropertyHouse),
	)

	svc := NewSearchService(db, NewStaticSampleProvider(nil))

	// "ork" matches city "New York" and address "York Ave", case-insensitive
	posts, fallback := svc.Search(SearchFilters{City: "ork"})
	require.False(t, fallback)
	require.Len(t, posts, 2)
	titles := []string{posts[0].Title, posts[1].Title}
	assert.Contains(t, titles, "NYC flat")
	assert.Contains(t, titles, "Jersey flat")
}

func TestSearchAndSemanticsAcrossDimensions(t *testing.T) {
	db := setupTestDB(t)
	seedPosts(t, db,
		testPost("match", "New York", "1st St", 2000, 2, models.PostTypeRent, models.PropertyApartment),
		testPost("wrong type", "New York", "2nd St", 2000, 2, models.PostTypeBuy, models.PropertyApartment),
		testPost("wrong bedroom", "New York", "3rd St", 2000, 3, models.PostTypeRent, models.PropertyApartment),
		testPost("too expensive", "New York", "4th St", 5000, 2, models.PostTypeRent, models.PropertyApartment),
	)

	svc := NewSearchService(db, NewStaticSampleProvider(nil))

	posts, fallback := svc.Search(SearchFilters{
		City:     "york",
		Type:     "rent",
		Bedroom:  "2",
		MaxPrice: "3000",
	})
	require.False(t, fallback)
	require.Len(t, posts, 1)
	assert.Equal(t, "match", posts[0].Title)
}

func TestSearchIgnoresUnsetAndInvalidFilters(t *testing.T) {
	db := setupTestDB(t)
	seedPosts(t, db,
		testPost("a", "Austin", "1st St", 1000, 1, models.PostTypeRent, models.PropertyApartment),
		testPost("b", "Boston", "2nd St", 2000, 2, models.PostTypeBuy, models.PropertyHouse),
	)

	svc := NewSearchService(db, NewStaticSampleProvider(nil))

	posts, fallback := svc.Search(SearchFilters{
		City:     "  ",
		Type:     "any",
		Bedroom:  "zero",
		MinPrice: "-100",
		MaxPrice: "",
	})
	require.False(t, fallback)
	assert.Len(t, posts, 2)
}

func TestSearchPriceBounds(t *testing.T) {
	db := setupTestDB(t)
	seedPosts(t, db,
		testPost("cheap", "Austin", "1st St", 500, 1, models.PostTypeRent, models.PropertyApartment),
		testPost("mid", "Austin", "2nd St", 1500, 1, models.PostTypeRent, models.PropertyApartment),
		testPost("pricey", "Austin", "3rd St", 3000, 1, models.PostTypeRent, models.PropertyApartment),
	)

	svc := NewSearchService(db, NewStaticSampleProvider(nil))

	// Lower bound only
	posts, _ := svc.Search(SearchFilters{MinPrice: "1000"})
	assert.Len(t, posts, 2)

	// Upper bound only
	posts, _ = svc.Search(SearchFilters{MaxPrice: "1500"})
	assert.Len(t, posts, 2)

	// Both bounds, inclusive
	posts, fallback := svc.Search(SearchFilters{MinPrice: "1500", MaxPrice: "1500"})
	require.False(t, fallback)
	require.Len(t, posts, 1)
	assert.Equal(t, "mid", posts[0].Title)
}

func TestSearchSorting(t *testing.T) {
	db := setupTestDB(t)

	older := testPost("older", "Austin", "1st St", 3000, 1, models.PostTypeRent, models.PropertyApartment)
	older.CreatedAt = time.Now().Add(-48 * time.Hour)
	newer := testPost("newer", "Austin", "2nd St", 1000, 1, models.PostTypeRent, models.PropertyApartment)
	newer.CreatedAt = time.Now()
	seedPosts(t, db, older, newer)

	svc := NewSearchService(db, NewStaticSampleProvider(nil))

	posts, _ := svc.Search(SearchFilters{Sort: "price_asc"})
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Title)

	posts, _ = svc.Search(SearchFilters{Sort: "price_desc"})
	assert.Equal(t, "older", posts[0].Title)

	posts, _ = svc.Search(SearchFilters{Sort: "date_asc"})
	assert.Equal(t, "older", posts[0].Title)

	posts, _ = svc.Search(SearchFilters{Sort: "date_desc"})
	assert.Equal(t, "newer", posts[0].Title)
}

func TestSearchFallbackOnZeroMatches(t *testing.T) {
	db := setupTestDB(t)
	seedPosts(t, db,
		testPost("a", "Austin", "1st St", 1000, 1, models.PostTypeRent, models.PropertyApartment),
	)

	samples := NewStaticSampleProvider([]models.Post{
		{Title: "Sample listing", City: "Sampletown"},
	})
	svc := NewSearchService(db, samples)

	posts, fallback := svc.Search(SearchFilters{City: "Atlantis"})
	assert.True(t, fallback)
	require.Len(t, posts, 1)
	assert.Equal(t, "Sample listing", posts[0].Title)
}

func TestSearchFallbackOnStoreFailure(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Post{}))

	samples := NewStaticSampleProvider([]models.Post{
		{Title: "Sample listing", City: "Sampletown"},
	})
	svc := NewSearchService(db, samples)

	posts, fallback := svc.Search(SearchFilters{})
	assert.True(t, fallback)
	require.Len(t, posts, 1)
	assert.Equal(t, "Sample listing", posts[0].Title)
}

func TestIsSaved(t *testing.T) {
	db := setupTestDB(t)

	post := testPost("a", "Austin", "1st St", 1000, 1, models.PostTypeRent, models.PropertyApartment)
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, db.Create(&models.SavedPost{UserID: 7, PostID: post.ID}).Error)

	svc := NewSearchService(db, NewStaticSampleProvider(nil))

	assert.True(t, svc.IsSaved(7, post.ID))
	assert.False(t, svc.IsSaved(8, post.ID))
	// Anonymous caller is never saved
	assert.False(t, svc.IsSaved(0, post.ID))
}
