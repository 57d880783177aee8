package models

import (
	"time"
)

type PostType string

const (
	PostTypeRent PostType = "rent"
	PostTypeBuy  PostType = "buy"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyCondo     PropertyType = "condo"
	PropertyLand      PropertyType = "land"
)

type Post struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Title     string       `json:"title" gorm:"size:255;not null"`
	Price     int          `json:"price" gorm:"not null;index"`
	Images    []string     `json:"images" gorm:"serializer:json;type:text"`
	Address   string       `json:"address" gorm:"size:500;not null"`
	City      string       `json:"city" gorm:"size:100;not null;index"`
	Bedroom   int          `json:"bedroom" gorm:"not null"`
	Bathroom  int          `json:"bathroom" gorm:"not null"`
	Latitude  string       `json:"latitude" gorm:"size:50"`
	Longitude string       `json:"longitude" gorm:"size:50"`
	Type      PostType     `json:"type" gorm:"type:varchar(10);not null;check:type IN ('rent','buy')"`
	Property  PropertyType `json:"property" gorm:"type:varchar(20);not null;check:property IN ('apartment','house','condo','land')"`
	UserID    uint         `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User       User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	PostDetail *PostDetail `json:"post_detail,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}

// PostDetail holds the extended descriptive attributes of a listing,
// exactly one per Post.
type PostDetail struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	PostID     uint    `json:"post_id" gorm:"uniqueIndex;not null"`
	Desc       string  `json:"desc" gorm:"type:text;not null"`
	Utilities  *string `json:"utilities" gorm:"size:100"`
	Pet        *string `json:"pet" gorm:"size:100"`
	Income     *string `json:"income" gorm:"size:255"`
	Size       *int    `json:"size"`
	School     *int    `json:"school"`
	Bus        *int    `json:"bus"`
	Restaurant *int    `json:"restaurant"`
}

// TableName specifies the table name for the PostDetail model
func (PostDetail) TableName() string {
	return "post_details"
}

// SavedPost is a customer's bookmark of a listing, unique per (user, post).
type SavedPost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_saved_user_post"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_saved_user_post"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Post Post `json:"post,omitempty" gorm:"foreignKey:PostID"`
}

// TableName specifies the table name for the SavedPost model
func (SavedPost) TableName() string {
	return "saved_posts"
}

// PostDataInput is the listing part of a create request
type PostDataInput struct {
	Title     string       `json:"title" binding:"required"`
	Price     int          `json:"price" binding:"required,gt=0"`
	Images    []string     `json:"images"`
	Address   string       `json:"address" binding:"required"`
	City      string       `json:"city" binding:"required"`
	Bedroom   int          `json:"bedroom" binding:"required,gt=0"`
	Bathroom  int          `json:"bathroom" binding:"required,gt=0"`
	Latitude  string       `json:"latitude"`
	Longitude string       `json:"longitude"`
	Type      PostType     `json:"type" binding:"required,oneof=rent buy"`
	Property  PropertyType `json:"property" binding:"required,oneof=apartment house condo land"`
}

// PostDetailInput is the detail part of a create request
type PostDetailInput struct {
	Desc       string  `json:"desc" binding:"required"`
	Utilities  *string `json:"utilities"`
	Pet        *string `json:"pet"`
	Income     *string `json:"income"`
	Size       *int    `json:"size"`
	School     *int    `json:"school"`
	Bus        *int    `json:"bus"`
	Restaurant *int    `json:"restaurant"`
}

// PostCreateRequest mirrors the client payload: listing plus its detail,
// created together.
type PostCreateRequest struct {
	PostData   PostDataInput   `json:"postData" binding:"required"`
	PostDetail PostDetailInput `json:"postDetail" binding:"required"`
}

// PostUpdateRequest is an explicit partial update: only non-nil fields change.
type PostUpdateRequest struct {
	Title     *string       `json:"title"`
	Price     *int          `json:"price"`
	Images    *[]string     `json:"images"`
	Address   *string       `json:"address"`
	City      *string       `json:"city"`
	Bedroom   *int          `json:"bedroom"`
	Bathroom  *int          `json:"bathroom"`
	Latitude  *string       `json:"latitude"`
	Longitude *string       `json:"longitude"`
	Type      *PostType     `json:"type"`
	Property  *PropertyType `json:"property"`
}
