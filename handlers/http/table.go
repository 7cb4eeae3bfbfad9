package httpHandler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const tableHTML = `<!DOCTYPE html>
<html>
<head>
<title>Smoke Logs</title>
<style>
  body { font-family: sans-serif; margin: 2em; }
  table { border-collapse: collapse; }
  th, td { border: 1px solid #999; padding: 6px 12px; text-align: right; }
  th { background: #eee; }
  tr.alert td { background: #fdd; }
</style>
</head>
<body>
<h1>🔥 Smoke Logs</h1>
<table>
  <tr><th>ID</th><th>Smoke</th><th>Alcohol</th><th>LPG</th><th>Status</th><th>Created At</th></tr>
  {{range .}}<tr{{if .Alerting}} class="alert"{{end}}><td>{{.ID}}</td><td>{{.Smoke}}</td><td>{{.Alcohol}}</td><td>{{.Lpg}}</td><td>{{.Status}}</td><td>{{.CreatedAt}}</td></tr>
  {{end}}
</table>
</body>
</html>
`

// tableRow pre-formats every cell so the template stays dumb; optional
// readings render as "-".
type tableRow struct {
	ID        uint
	Smoke     string
	Alcohol   string
	Lpg       string
	Status    string
	CreatedAt string
	Alerting  bool
}

func optCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

// Table handles GET /table
func (h *SmokeLogHandler) Table(c *gin.Context) {
	readings, err := h.api.Recent(h.limit)
	if err != nil {
		log.Printf("Failed to query smoke logs for table: %v", err)
		c.String(http.StatusInternalServerError, "Failed to retrieve logs")
		return
	}

	rows := make([]tableRow, 0, len(readings))
	for i := range readings {
		r := &readings[i]
		rows = append(rows, tableRow{
			ID:        r.ID,
			Smoke:     fmt.Sprintf("%.1f", r.Smoke),
			Alcohol:   optCell(r.Alcohol),
			Lpg:       optCell(r.Lpg),
			Status:    r.Status,
			CreatedAt: r.CreatedAt.In(h.loc).Format(timeLayout),
			Alerting:  r.IsAlerting(),
		})
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.Execute(c.Writer, rows); err != nil {
		log.Printf("Failed to render log table: %v", err)
	}
}
