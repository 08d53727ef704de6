package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/config"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
	"github.com/minhanhng/salon-availability/internal/core/ports/in"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type AvailabilityController struct {
	useCase in.SchedulingUseCase
	cfg     *config.Config
}

func NewAvailabilityController(useCase in.SchedulingUseCase, cfg *config.Config) *AvailabilityController {
	return &AvailabilityController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/availability", c.rankAvailability)
		api.GET("/availability/week", c.weekStatus)
		api.GET("/employees/:employeeId/availability", c.checkSlot)
		api.GET("/employees/:employeeId/schedule-status", c.dayStatus)
		api.POST("/cache/invalidate/:date", c.invalidateDay)
		api.POST("/cache/invalidate-all", c.invalidateAll)
	}
}

func (c *AvailabilityController) rankAvailability(ctx *gin.Context) {
	now := time.Now().In(config.TimeZone)

	date := now
	if dateParam := ctx.Query("date"); dateParam != "" {
		parsed, err := time.ParseInLocation(dateLayout, dateParam, config.TimeZone)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected yyyy-MM-dd"})
			return
		}
		date = parsed
	}

	// "at" overrides the clock, mainly for the preview screens
	if atParam := ctx.Query("at"); atParam != "" {
		at, err := time.ParseInLocation(timeLayout, atParam, config.TimeZone)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid at format, expected HH:MM"})
			return
		}
		now = time.Date(date.Year(), date.Month(), date.Day(), at.Hour(), at.Minute(), 0, 0, config.TimeZone)
	}

	entries, err := c.useCase.RankAvailability(ctx.Request.Context(), date, now)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"date":        date.Format(dateLayout),
		"generatedAt": now.Format(time.RFC3339),
		"entries":     entries,
	})
}

func (c *AvailabilityController) checkSlot(ctx *gin.Context) {
	employeeID, err := uuid.Parse(ctx.Param("employeeId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	date, err := time.ParseInLocation(dateLayout, ctx.Query("date"), config.TimeZone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected yyyy-MM-dd"})
		return
	}

	timeParam := ctx.Query("time")
	if timeParam == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing time parameter"})
		return
	}

	verdict, err := c.useCase.CheckSlot(ctx.Request.Context(), employeeID, date, json_types.ParseTimeOfDay(timeParam))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, verdict)
}

func (c *AvailabilityController) dayStatus(ctx *gin.Context) {
	employeeID, err := uuid.Parse(ctx.Param("employeeId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	date, err := time.ParseInLocation(dateLayout, ctx.Query("date"), config.TimeZone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected yyyy-MM-dd"})
		return
	}

	status, err := c.useCase.DayStatus(ctx.Request.Context(), employeeID, date)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, status)
}

func (c *AvailabilityController) weekStatus(ctx *gin.Context) {
	employeeID, err := uuid.Parse(ctx.Query("employeeId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	from, err := time.ParseInLocation(dateLayout, ctx.Query("from"), config.TimeZone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from format, expected yyyy-MM-dd"})
		return
	}

	statuses, err := c.useCase.WeekStatus(ctx.Request.Context(), employeeID, from)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"from": from.Format(dateLayout),
		"days": statuses,
	})
}

func (c *AvailabilityController) invalidateDay(ctx *gin.Context) {
	date, err := time.Parse(dateLayout, ctx.Param("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected yyyy-MM-dd"})
		return
	}

	if err := c.useCase.InvalidateDayCache(ctx.Request.Context(), date.Format(dateLayout)); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *AvailabilityController) invalidateAll(ctx *gin.Context) {
	if err := c.useCase.InvalidateAllCache(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *AvailabilityController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
