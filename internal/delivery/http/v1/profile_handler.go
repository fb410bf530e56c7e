package v1

import (
	"net/http"

	"remote-jobs-backend/internal/delivery/http/response"
	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := public.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.POST("", handler.Update)
		profile.GET("/skills", handler.Categories)
		profile.POST("/skills", handler.AddSkills)
		profile.DELETE("/skills/:skill", handler.RemoveSkill)
	}
}

type AddSkillsRequest struct {
	Skills []string `json:"skills" binding:"required,min=1"`
}

// Get godoc
// @Summary      Read the matching profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileUC.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// Update godoc
// @Summary      Update the matching profile
// @Description  Shallow-merge the provided fields over the stored profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileUpdate  true  "Partial profile"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile [post]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// Categories godoc
// @Summary      Supported skill categories
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile/skills [get]
func (h *ProfileHandler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, "Skill categories retrieved", h.profileUC.Categories())
}

// AddSkills godoc
// @Summary      Add skills to the profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request  body      AddSkillsRequest  true  "Skills to add"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile/skills [post]
func (h *ProfileHandler) AddSkills(c *gin.Context) {
	var req AddSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.AddSkills(c.Request.Context(), req.Skills)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills added", profile)
}

// RemoveSkill godoc
// @Summary      Remove a skill from the profile
// @Tags         profile
// @Produce      json
// @Param        skill  path      string  true  "Skill name"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /profile/skills/{skill} [delete]
func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	profile, err := h.profileUC.RemoveSkill(c.Request.Context(), c.Param("skill"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", profile)
}
