package handlers

import (
	"net/http"
	"strconv"

	"github.com/alimgiray/repostats/internal/services"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	globalService      *services.GlobalStatsService
	contributorService *services.ContributorStatsService
}

func NewStatsHandler(globalService *services.GlobalStatsService, contributorService *services.ContributorStatsService) *StatsHandler {
	return &StatsHandler{
		globalService:      globalService,
		contributorService: contributorService,
	}
}

// GlobalStats handles GET /stats/global/:year
func (h *StatsHandler) GlobalStats(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	summaries := h.globalService.ReportYears([]int{year})

	if wantsJSON(c) {
		c.JSON(http.StatusOK, summaries[0])
		return
	}
	c.HTML(http.StatusOK, "global_page", summaries)
}

// ContributorStats handles GET /stats/contributors?names=a,b&years=2019,2020
func (h *StatsHandler) ContributorStats(c *gin.Context) {
	contributors, err := services.ParseContributors(c.Query("names"))
	if err != nil {
		badRequest(c, err)
		return
	}

	years, err := services.ParseYears(c.Query("years"))
	if err != nil {
		badRequest(c, err)
		return
	}

	reports := h.contributorService.ReportBatch(contributors, years)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, reports)
		return
	}
	c.HTML(http.StatusOK, "contributors_page", reports)
}

func wantsJSON(c *gin.Context) bool {
	return c.Query("format") == "json"
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
