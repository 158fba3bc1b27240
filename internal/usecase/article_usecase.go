package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/pkg/apperror"
	"yuva-hire-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const msgArticleNotFound = "Article not found"

type articleUsecase struct {
	articleRepo domain.ArticleRepository
	validate    *validator.Validate
}

func NewArticleUsecase(articleRepo domain.ArticleRepository, validate *validator.Validate) domain.ArticleUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &articleUsecase{
		articleRepo: articleRepo,
		validate:    validate,
	}
}

func viewerID(viewer *domain.User) string {
	if viewer == nil {
		return ""
	}
	return viewer.ID
}

func (u *articleUsecase) List(ctx context.Context, viewer *domain.User, category string) ([]domain.Article, error) {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, "all") {
		category = ""
	}
	articles, err := u.articleRepo.List(ctx, domain.ArticleFilter{
		Category: category,
		ViewerID: viewerID(viewer),
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return articles, nil
}

func (u *articleUsecase) Get(ctx context.Context, viewer *domain.User, id string) (*domain.Article, error) {
	article, err := u.articleRepo.GetByID(ctx, id, viewerID(viewer))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(msgArticleNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return article, nil
}

func (u *articleUsecase) Create(ctx context.Context, admin *domain.User, in domain.ArticleInput) (*domain.Article, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("Only admins can publish articles")
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	in.Category = strings.TrimSpace(in.Category)
	in.ReadTime = strings.TrimSpace(in.ReadTime)
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	now := time.Now().UTC()
	article := &domain.Article{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Category:  in.Category,
		ReadTime:  in.ReadTime,
		Author:    admin.Name,
		AuthorID:  admin.ID,
		Featured:  in.Featured,
		Trending:  in.Trending,
		Date:      now.Format(domain.DateLayout),
		CreatedAt: now,
	}

	if err := u.articleRepo.Create(ctx, article); err != nil {
		return nil, apperror.Internal(err)
	}
	return article, nil
}

func (u *articleUsecase) ToggleLike(ctx context.Context, viewer *domain.User, id string) (bool, int64, error) {
	if viewer == nil {
		return false, 0, apperror.Unauthorized("Unauthorized")
	}
	liked, likes, err := u.articleRepo.ToggleLike(ctx, id, viewer.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, 0, apperror.NotFound(msgArticleNotFound)
		}
		return false, 0, apperror.Internal(err)
	}
	return liked, likes, nil
}
