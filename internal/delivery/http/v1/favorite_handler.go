package v1

import (
	"net/http"
	"time"

	"remote-jobs-backend/internal/delivery/http/response"
	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteUC domain.FavoriteUsecase
}

func NewFavoriteHandler(protected *gin.RouterGroup, favoriteUC domain.FavoriteUsecase) {
	handler := &FavoriteHandler{favoriteUC: favoriteUC}

	favorites := protected.Group("/favorites")
	{
		favorites.POST("", handler.Add)
		favorites.GET("", handler.List)
		favorites.GET("/:id", handler.Get)
		favorites.PATCH("/:id", handler.Update)
		favorites.DELETE("/:id", handler.Remove)
	}
}

type AddFavoriteRequest struct {
	JobID        string    `json:"job_id"`
	Title        string    `json:"title" binding:"required"`
	Company      string    `json:"company"`
	Source       string    `json:"source"`
	URL          string    `json:"url" binding:"required,url"`
	Description  string    `json:"description"`
	Salary       string    `json:"salary"`
	Remote       bool      `json:"remote"`
	Posted       time.Time `json:"posted"`
	MatchScore   int       `json:"matchScore"`
	MatchReasons []string  `json:"matchReasons"`
	Notes        string    `json:"notes"`
	Priority     string    `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type UpdateFavoriteRequest struct {
	Notes    *string `json:"notes"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// Add godoc
// @Summary      Favorite a job
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        favorite  body      AddFavoriteRequest  true  "Job to favorite"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Router       /favorites [post]
// @Security     BearerAuth
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	fav := &domain.FavoriteJob{
		JobID:        req.JobID,
		Title:        req.Title,
		Company:      req.Company,
		Source:       req.Source,
		URL:          req.URL,
		Description:  req.Description,
		Salary:       req.Salary,
		Remote:       req.Remote,
		Posted:       req.Posted,
		MatchScore:   req.MatchScore,
		MatchReasons: req.MatchReasons,
		Notes:        req.Notes,
		Priority:     req.Priority,
	}
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.favoriteUC.Add(c.Request.Context(), userID, fav); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job favorited", fav)
}

// List godoc
// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /favorites [get]
// @Security     BearerAuth
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	favs, err := h.favoriteUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Favorites retrieved", favs)
}

// Get godoc
// @Summary      Read one favorite
// @Tags         favorites
// @Produce      json
// @Param        id   path      string  true  "Favorite ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /favorites/{id} [get]
// @Security     BearerAuth
func (h *FavoriteHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	fav, err := h.favoriteUC.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Favorite retrieved", fav)
}

// Update godoc
// @Summary      Update favorite notes or priority
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Favorite ID"
// @Param        update  body      UpdateFavoriteRequest  true  "Fields to change"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /favorites/{id} [patch]
// @Security     BearerAuth
func (h *FavoriteHandler) Update(c *gin.Context) {
	var req UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	fav, err := h.favoriteUC.Update(c.Request.Context(), userID, c.Param("id"), domain.FavoriteUpdate{
		Notes:    req.Notes,
		Priority: req.Priority,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Favorite updated", fav)
}

// Remove godoc
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Param        id   path      string  true  "Favorite ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /favorites/{id} [delete]
// @Security     BearerAuth
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.favoriteUC.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Favorite removed", nil)
}
