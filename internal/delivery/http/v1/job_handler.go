package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"remote-jobs-backend/internal/delivery/http/response"
	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, refreshLimited *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := public.Group("/jobs")
	{
		jobs.GET("/recent", handler.Recent)
		jobs.GET("/top", handler.Top)
		jobs.GET("/search", handler.Search)
		jobs.GET("/sources", handler.Sources)
	}

	// Refresh triggers live scraping, so it carries its own throttle.
	refreshLimited.POST("/jobs/refresh", handler.Refresh)
}

type RefreshRequest struct {
	Skills []string `json:"skills"`
}

type JobListResponse struct {
	Jobs      []domain.Job `json:"jobs"`
	Total     int          `json:"total"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

func jobList(jobs []domain.Job) JobListResponse {
	return JobListResponse{Jobs: jobs, Total: len(jobs), FetchedAt: time.Now()}
}

type RefreshResponse struct {
	Jobs    []domain.Job           `json:"jobs"`
	Total   int                    `json:"total"`
	Sources []domain.SourceSummary `json:"sources"`
}

// splitCSV turns "ai, writing" into ["ai", "writing"], dropping blanks.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Recent godoc
// @Summary      Newest stored jobs
// @Description  List the most recently posted jobs, scored against the profile and ordered best match first
// @Tags         jobs
// @Produce      json
// @Param        limit  query     int  false  "Max jobs to return (default 25)"
// @Success      200    {object}  response.Response
// @Router       /jobs/recent [get]
func (h *JobHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))

	jobs, err := h.jobUC.Recent(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recent jobs retrieved", jobList(jobs))
}

// Top godoc
// @Summary      Best matching jobs
// @Description  The stored jobs that best match the profile, ranked by score
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/top [get]
func (h *JobHandler) Top(c *gin.Context) {
	jobs, err := h.jobUC.Top(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Top matches retrieved", jobList(jobs))
}

// Search godoc
// @Summary      Search stored jobs
// @Description  Filter stored jobs by skills and sources, sorted by match, recency or salary
// @Tags         jobs
// @Produce      json
// @Param        skills     query     string  false  "Comma-separated skills (defaults to profile skills)"
// @Param        sources    query     string  false  "Comma-separated source names"
// @Param        minSalary  query     int     false  "Minimum leading salary figure"
// @Param        limit      query     int     false  "Max jobs to return (default 25)"
// @Param        sortBy     query     string  false  "match (default), recent or salary"
// @Success      200        {object}  response.Response
// @Router       /jobs/search [get]
func (h *JobHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	minSalary, _ := strconv.Atoi(c.DefaultQuery("minSalary", "0"))

	sortBy := c.Query("sortBy")
	switch sortBy {
	case "", "match", "recent", "salary":
	default:
		c.Error(apperror.BadRequest("sortBy must be one of: match, recent, salary"))
		return
	}

	jobs, err := h.jobUC.Search(c.Request.Context(), domain.SearchFilters{
		Skills:    splitCSV(c.Query("skills")),
		Sources:   splitCSV(c.Query("sources")),
		MinSalary: minSalary,
		Limit:     limit,
		SortBy:    sortBy,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search results retrieved", jobList(jobs))
}

// Refresh godoc
// @Summary      Scrape all sources now
// @Description  Run every job source, merge results into the store and return the best fresh matches
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        request  body      RefreshRequest  false  "Optional skill override"
// @Success      200      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /jobs/refresh [post]
func (h *JobHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	// Body is optional; ignore absence, reject garbage.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	}

	jobs, total, sources, err := h.jobUC.Refresh(c.Request.Context(), req.Skills)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job refresh completed", RefreshResponse{
		Jobs:    jobs,
		Total:   total,
		Sources: sources,
	})
}

// Sources godoc
// @Summary      Available job sources
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/sources [get]
func (h *JobHandler) Sources(c *gin.Context) {
	response.Success(c, http.StatusOK, "Sources retrieved", h.jobUC.Sources())
}
