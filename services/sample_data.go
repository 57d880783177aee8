package services

import (
	"realestate-server/models"
)

// StaticSampleProvider serves a fixed set of representative listings used as
// the fallback when a search yields no real results.
type StaticSampleProvider struct {
	posts []models.Post
}

// NewStaticSampleProvider creates a provider over the given listings
func NewStaticSampleProvider(posts []models.Post) *StaticSampleProvider {
	return &StaticSampleProvider{posts: posts}
}

// DefaultSampleProvider returns the built-in fallback listings
func DefaultSampleProvider() *StaticSampleProvider {
	return NewStaticSampleProvider(defaultSamplePosts)
}

// SamplePosts returns a copy of the fallback listings
func (p *StaticSampleProvider) SamplePosts() []models.Post {
	out := make([]models.Post, len(p.posts))
	copy(out, p.posts)
	return out
}

var defaultSamplePosts = []models.Post{
	{
		Title:    "Modern Apartment Near Central Park",
		Price:    2200,
		Images:   []string{"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2"},
		Address:  "145 West 67th St",
		City:     "New York",
		Bedroom:  2,
		Bathroom: 1,
		Type:     models.PostTypeRent,
		Property: models.PropertyApartment,
	},
	{
		Title:    "Family House with Garden",
		Price:    385000,
		Images:   []string{"https://images.unsplash.com/photo-1570129477492-45c003edd2be"},
		Address:  "28 Maple Drive",
		City:     "Austin",
		Bedroom:  4,
		Bathroom: 2,
		Type:     models.PostTypeBuy,
		Property: models.PropertyHouse,
	},
	{
		Title:    "Downtown Studio Condo",
		Price:    1450,
		Images:   []string{"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688"},
		Address:  "901 Pine Street",
		City:     "Seattle",
		Bedroom:  1,
		Bathroom: 1,
		Type:     models.PostTypeRent,
		Property: models.PropertyCondo,
	},
	{
		Title:    "Suburban Lot Ready to Build",
		Price:    95000,
		Images:   []string{"https://images.unsplash.com/photo-1500382017468-9049fed747ef"},
		Address:  "Lot 12, Meadowbrook Lane",
		City:     "Nashville",
		Bedroom:  0,
		Bathroom: 0,
		Type:     models.PostTypeBuy,
		Property: models.PropertyLand,
	},
}
