package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type logRow struct {
	ID        uint     `json:"id"`
	Smoke     float64  `json:"smoke"`
	Alcohol   *float64 `json:"alcohol"`
	Lpg       *float64 `json:"lpg"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
}

type model struct {
	serverURL string
	rows      []logRow
	lastFetch time.Time
	errMsg    string
	quitting  bool
}

type logsMsg []logRow
type tickMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	url := os.Getenv("SMOKE_SERVER_URL")
	if url == "" {
		url = defaultServerURL
	}
	return model{serverURL: url}
}

func (m model) Init() tea.Cmd {
	return fetchLogs(m.serverURL)
}

func tick() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

func fetchLogs(serverURL string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 5 * time.Second}

		resp, err := client.Get(serverURL + "/logs")
		if err != nil {
			return errMsg{err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("server returned status %d", resp.StatusCode)}
		}

		var rows []logRow
		if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
			return errMsg{err}
		}
		return logsMsg(rows)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, fetchLogs(m.serverURL)
		}

	case logsMsg:
		m.rows = msg
		m.lastFetch = time.Now()
		m.errMsg = ""
		return m, tick()

	case errMsg:
		m.errMsg = msg.Error()
		return m, tick()

	case tickMsg:
		return m, fetchLogs(m.serverURL)
	}

	return m, nil
}

func cell(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("🔥 Smoke Log Monitor — "+m.serverURL) + "\n"

	if m.errMsg != "" {
		s += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	if len(m.rows) == 0 {
		s += normalStyle.Render("No readings yet.") + "\n"
	} else {
		s += headerStyle.Render(fmt.Sprintf("  %-6s %-8s %-8s %-8s %-8s %s",
			"ID", "SMOKE", "ALCOHOL", "LPG", "STATUS", "CREATED AT")) + "\n"

		for _, r := range m.rows {
			line := fmt.Sprintf("%-6d %-8.1f %-8s %-8s %-8s %s",
				r.ID, r.Smoke, cell(r.Alcohol), cell(r.Lpg), r.Status, r.CreatedAt)
			if r.Status == "DANGER" || r.Status == "FIRE" {
				s += alertStyle.Render(line) + "\n"
			} else {
				s += normalStyle.Render(line) + "\n"
			}
		}
	}

	if !m.lastFetch.IsZero() {
		s += statusStyle.Render(fmt.Sprintf("\nLast update: %s", m.lastFetch.Format("15:04:05")))
	}
	s += statusStyle.Render("\n\nr: refresh • q: quit\n")

	return s
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
