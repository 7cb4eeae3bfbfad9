package httpHandler

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"smoke-server/entities"
	"smoke-server/usecases"

	"github.com/gin-gonic/gin"
)

const timeLayout = "2006-01-02 15:04:05"

// SmokeAPI is the slice of the use case layer the HTTP surface needs.
type SmokeAPI interface {
	Ingest(req *usecases.IngestRequest) (*entities.SmokeLog, error)
	Recent(limit int) ([]entities.SmokeLog, error)
	Latest() (*entities.SmokeLog, error)
	DBTime() (time.Time, error)
}

type SmokeLogHandler struct {
	api   SmokeAPI
	loc   *time.Location
	limit int
	tmpl  *template.Template
}

func NewSmokeLogHandler(api SmokeAPI, loc *time.Location, limit int) *SmokeLogHandler {
	return &SmokeLogHandler{
		api:   api,
		loc:   loc,
		limit: limit,
		tmpl:  template.Must(template.New("table").Parse(tableHTML)),
	}
}

// logView is a SmokeLog projected for responses, with the timestamp rendered
// in the configured display timezone.
type logView struct {
	ID        uint     `json:"id"`
	Smoke     float64  `json:"smoke"`
	Alcohol   *float64 `json:"alcohol,omitempty"`
	Lpg       *float64 `json:"lpg,omitempty"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
}

func (h *SmokeLogHandler) view(reading *entities.SmokeLog) logView {
	return logView{
		ID:        reading.ID,
		Smoke:     reading.Smoke,
		Alcohol:   reading.Alcohol,
		Lpg:       reading.Lpg,
		Status:    reading.Status,
		CreatedAt: reading.CreatedAt.In(h.loc).Format(timeLayout),
	}
}

// Root handles GET /
func (h *SmokeLogHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "🔥 Smoke Alert Server Running...")
}

// Ingest handles POST /smoke
func (h *SmokeLogHandler) Ingest(c *gin.Context) {
	var req usecases.IngestRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	_, err := h.api.Ingest(&req)
	if err != nil {
		if usecases.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		log.Printf("Failed to insert smoke log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save reading",
		})
		return
	}

	c.String(http.StatusOK, "OK")
}

// Logs handles GET /logs
func (h *SmokeLogHandler) Logs(c *gin.Context) {
	readings, err := h.api.Recent(h.limit)
	if err != nil {
		log.Printf("Failed to query smoke logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve logs",
		})
		return
	}

	views := make([]logView, 0, len(readings))
	for i := range readings {
		views = append(views, h.view(&readings[i]))
	}

	c.JSON(http.StatusOK, views)
}

// Latest handles GET /latest. An empty table is a 200 with an empty object,
// not an error.
func (h *SmokeLogHandler) Latest(c *gin.Context) {
	reading, err := h.api.Latest()
	if err != nil {
		log.Printf("Failed to query latest smoke log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve latest log",
		})
		return
	}

	if reading == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, h.view(reading))
}

// TestDB handles GET /test-db
func (h *SmokeLogHandler) TestDB(c *gin.Context) {
	now, err := h.api.DBTime()
	if err != nil {
		log.Printf("Failed to read database time: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to reach database",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"now": now.In(h.loc).Format(timeLayout),
	})
}
