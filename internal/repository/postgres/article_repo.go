package postgres

import (
	"context"
	"fmt"

	"yuva-hire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type articleRepo struct {
	db *pgxpool.Pool
}

func NewArticleRepository(db *pgxpool.Pool) domain.ArticleRepository {
	return &articleRepo{db: db}
}

// articleSelect's %s slot is the liked-by-viewer expression.
const articleSelect = `
		SELECT
			a.id, a.title, a.excerpt, a.content, a.category, a.read_time, a.author, a.author_id,
			a.featured, a.trending,
			(SELECT COUNT(*) FROM article_likes l WHERE l.article_id = a.id) AS likes,
			%s AS liked_by_me,
			to_char(a.published_on, 'YYYY-MM-DD'), a.created_at
		FROM articles a`

func likedExpr(viewerID string, argIndex int) string {
	if viewerID == "" {
		return "FALSE"
	}
	return fmt.Sprintf("EXISTS (SELECT 1 FROM article_likes l WHERE l.article_id = a.id AND l.user_id = $%d)", argIndex)
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category, &a.ReadTime, &a.Author, &a.AuthorID,
		&a.Featured, &a.Trending, &a.Likes, &a.LikedByMe, &a.Date, &a.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *articleRepo) Create(ctx context.Context, a *domain.Article) error {
	query := `INSERT INTO articles (id, title, excerpt, content, category, read_time, author, author_id,
                  featured, trending, published_on, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::date, $12)`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.Title, a.Excerpt, a.Content, a.Category, a.ReadTime, a.Author, a.AuthorID,
		a.Featured, a.Trending, a.Date, a.CreatedAt,
	)
	return mapError(err)
}

func (r *articleRepo) GetByID(ctx context.Context, id, viewerID string) (*domain.Article, error) {
	args := []interface{}{id}
	if viewerID != "" {
		args = append(args, viewerID)
	}
	query := fmt.Sprintf(articleSelect, likedExpr(viewerID, 2)) + ` WHERE a.id = $1`
	return scanArticle(r.db.QueryRow(ctx, query, args...))
}

func (r *articleRepo) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	var args []interface{}
	where := ""
	if f.Category != "" {
		args = append(args, f.Category)
		where = fmt.Sprintf(" WHERE lower(a.category) = lower($%d)", len(args))
	}
	liked := "FALSE"
	if f.ViewerID != "" {
		args = append(args, f.ViewerID)
		liked = likedExpr(f.ViewerID, len(args))
	}
	query := fmt.Sprintf(articleSelect, liked) + where + ` ORDER BY a.created_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, mapError(rows.Err())
}

// ToggleLike removes the viewer's like if present, otherwise adds it, in one transaction.
func (r *articleRepo) ToggleLike(ctx context.Context, articleID, userID string) (bool, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, 0, err
	}
	defer tx.Rollback(ctx)

	// Row lock serialises concurrent toggles on the same article.
	var id string
	if err := tx.QueryRow(ctx, `SELECT id FROM articles WHERE id = $1 FOR UPDATE`, articleID).Scan(&id); err != nil {
		return false, 0, mapError(err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM article_likes WHERE article_id = $1 AND user_id = $2`, articleID, userID)
	if err != nil {
		return false, 0, mapError(err)
	}
	liked := tag.RowsAffected() == 0
	if liked {
		if _, err := tx.Exec(ctx, `INSERT INTO article_likes (article_id, user_id) VALUES ($1, $2)`, articleID, userID); err != nil {
			return false, 0, mapError(err)
		}
	}

	var likes int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM article_likes WHERE article_id = $1`, articleID).Scan(&likes); err != nil {
		return false, 0, mapError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}
