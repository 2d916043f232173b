package quotes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"quotehub/internal/export"
	"quotehub/pkg/models"
)

// RunFunc triggers a scraping run; wired to (*scraper.Scraper).Run.
type RunFunc func(ctx context.Context, maxPages int) ([]models.Quote, error)

const maxPagesCap = 50

type Handler struct {
	Store        *Store
	Run          RunFunc
	DefaultPages int
}

func NewHandler(store *Store, run RunFunc, defaultPages int) *Handler {
	if defaultPages <= 0 {
		defaultPages = 3
	}
	return &Handler{Store: store, Run: run, DefaultPages: defaultPages}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scrape", h.scrape)
	rg.GET("/quotes", h.list)
	rg.GET("/stats", h.stats)
	rg.GET("/tags", h.tags)
	rg.GET("/export", h.export)
}

type scrapeReq struct {
	MaxPages int `json:"max_pages"`
}

func (h *Handler) scrape(c *gin.Context) {
	// A bad or missing body falls back to the default page count rather
	// than failing the request.
	req := scrapeReq{MaxPages: h.DefaultPages}
	_ = c.ShouldBindJSON(&req)

	pages := req.MaxPages
	if pages <= 0 {
		pages = h.DefaultPages
	}
	if pages > maxPagesCap {
		pages = maxPagesCap
	}

	collected, err := h.Run(c.Request.Context(), pages)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"quotes":  collected,
		"stats":   ComputeStats(collected),
		"message": fmt.Sprintf("Successfully scraped %d quotes", len(collected)),
	})
}

func (h *Handler) list(c *gin.Context) {
	filtered := Filter(h.Store.All(), c.Query("search"), c.Query("tag"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"quotes":  filtered,
		"total":   len(filtered),
	})
}

func (h *Handler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   ComputeStats(h.Store.All()),
	})
}

func (h *Handler) tags(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tags":    ListTags(h.Store.All()),
	})
}

func (h *Handler) export(c *gin.Context) {
	filtered := Filter(h.Store.All(), c.Query("search"), c.Query("tag"))

	data, err := export.Encode(filtered)
	if err != nil {
		if errors.Is(err, export.ErrNoQuotes) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "No quotes to export",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	filename := export.Filename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
