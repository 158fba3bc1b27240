package v1

import (
	"net/http"

	"yuva-hire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleUC domain.ArticleUsecase
}

func NewArticleHandler(r Routes, articleUC domain.ArticleUsecase) {
	handler := &ArticleHandler{articleUC: articleUC}

	articles := r.Authed.Group("/articles")
	{
		articles.GET("", handler.List)
		articles.GET("/:id", handler.Get)
		articles.POST("/:id/like", handler.ToggleLike)
	}

	r.Admin.POST("/articles", handler.Create)
}

type CreateArticleRequest struct {
	Title    string `json:"title" binding:"required"`
	Excerpt  string `json:"excerpt" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	ReadTime string `json:"readTime" binding:"required"`
	Featured bool   `json:"featured"`
	Trending bool   `json:"trending"`
}

type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

type ArticleListResponse struct {
	Articles []domain.Article `json:"articles"`
}

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

// List godoc
// @Summary      List articles
// @Description  Newest first. likedByMe reflects the caller.
// @Tags         articles
// @Produce      json
// @Param        category  query     string  false  "Category (all for every category)"
// @Success      200  {object}  ArticleListResponse
// @Router       /articles [get]
// @Security     BearerAuth
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleUC.List(c.Request.Context(), currentUser(c), c.Query("category"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	c.JSON(http.StatusOK, ArticleListResponse{Articles: articles})
}

// Get godoc
// @Summary      Article detail
// @Tags         articles
// @Produce      json
// @Param        id   path      string  true  "Article ID"
// @Success      200  {object}  ArticleResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /articles/{id} [get]
// @Security     BearerAuth
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articleUC.Get(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ArticleResponse{Article: article})
}

// Create godoc
// @Summary      Publish an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      CreateArticleRequest  true  "Article"
// @Success      201   {object}  ArticleResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Router       /articles [post]
// @Security     BearerAuth
func (h *ArticleHandler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if !bindJSON(c, &req) {
		return
	}

	article, err := h.articleUC.Create(c.Request.Context(), currentUser(c), domain.ArticleInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		ReadTime: req.ReadTime,
		Featured: req.Featured,
		Trending: req.Trending,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	created(c, ArticleResponse{Article: article})
}

// ToggleLike godoc
// @Summary      Like or unlike an article
// @Tags         articles
// @Produce      json
// @Param        id   path      string  true  "Article ID"
// @Success      200  {object}  LikeResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /articles/{id}/like [post]
// @Security     BearerAuth
func (h *ArticleHandler) ToggleLike(c *gin.Context) {
	liked, likes, err := h.articleUC.ToggleLike(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, LikeResponse{Liked: liked, Likes: likes})
}
