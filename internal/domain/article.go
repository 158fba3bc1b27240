package domain

import (
	"context"
	"time"
)

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	ReadTime  string    `json:"readTime"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"authorId"`
	Featured  bool      `json:"featured"`
	Trending  bool      `json:"trending"`
	Likes     int64     `json:"likes"`
	LikedByMe bool      `json:"likedByMe"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"createdAt"`
}

type ArticleInput struct {
	Title    string `validate:"required,max=200"`
	Excerpt  string `validate:"required,max=500"`
	Content  string `validate:"required"`
	Category string `validate:"required,max=100"`
	ReadTime string `validate:"required,max=50"`
	Featured bool
	Trending bool
}

type ArticleFilter struct {
	Category string
	ViewerID string
}

type ArticleRepository interface {
	Create(ctx context.Context, article *Article) error
	// GetByID annotates LikedByMe for viewerID.
	GetByID(ctx context.Context, id, viewerID string) (*Article, error)
	List(ctx context.Context, f ArticleFilter) ([]Article, error)
	// ToggleLike flips the viewer's like and returns the new state and total.
	ToggleLike(ctx context.Context, articleID, userID string) (bool, int64, error)
}

type ArticleUsecase interface {
	List(ctx context.Context, viewer *User, category string) ([]Article, error)
	Get(ctx context.Context, viewer *User, id string) (*Article, error)
	Create(ctx context.Context, admin *User, in ArticleInput) (*Article, error)
	ToggleLike(ctx context.Context, viewer *User, id string) (bool, int64, error)
}
