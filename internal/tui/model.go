package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"articlesum/internal/domain"
	"articlesum/internal/service"
)

const (
	endpoint     = "tui"
	historyLimit = 50
	previewLen   = 200
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Summarize(ctx context.Context, endpoint string, req service.SummarizeRequest) (service.SummarizeResult, error)
	History(ctx context.Context, limit int) ([]domain.SummaryRecord, error)
	Delete(ctx context.Context, id int64) error
}

type summarizedMsg struct {
	res    service.SummarizeResult
	source string
	at     time.Time
	err    error
}

type historyMsg struct {
	records []domain.SummaryRecord
	err     error
}

type deletedMsg struct {
	id  int64
	err error
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service   SummaryPort
	now       func() time.Time
	sentences int
	input     textinput.Model
	viewport  viewport.Model
	records   []domain.SummaryRecord
	status    string
	cursor    int
	ready     bool
	busy      bool
}

// New creates a new TUI model instance. sentences is the summary length
// requested for every input.
func New(svc SummaryPort, sentences int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Paste a URL or some text and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: svc, now: time.Now, sentences: sentences, input: ti, viewport: vp, status: "Loading history..."}
}

// Init starts the cursor blink and loads history.
func (m Model) Init() tea.Cmd { return tea.Batch(textinput.Blink, m.loadHistory()) }

func (m Model) loadHistory() tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		records, err := svc.History(context.Background(), historyLimit)
		return historyMsg{records: records, err: err}
	}
}

func (m Model) summarize(input string) tea.Cmd {
	svc, now := m.service, m.now
	req := service.SummarizeRequest{Sentences: m.sentences}
	source := input
	if isURL(input) {
		req.URL = input
	} else {
		req.Text = input
		source = domain.TruncateRunes(input, previewLen)
	}
	return func() tea.Msg {
		res, err := svc.Summarize(context.Background(), endpoint, req)
		return summarizedMsg{res: res, source: source, at: now(), err: err}
	}
}

func (m Model) deleteRecord(id int64) tea.Cmd {
	svc := m.service
	return func() tea.Msg {
		return deletedMsg{id: id, err: svc.Delete(context.Background(), id)}
	}
}

// Update handles key, window and service events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, spacer
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrent())
		return m, nil

	case historyMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.records = msg.records
		m.cursor = 0
		m.status = fmt.Sprintf("%d summaries in history.", len(m.records))
		m.viewport.SetContent(m.renderCurrent())
		return m, nil

	case summarizedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.records = append([]domain.SummaryRecord{{
			ID:             msg.res.ID,
			SourceType:     msg.res.Source,
			SourceContent:  msg.source,
			Summary:        msg.res.Summary,
			WordCount:      msg.res.WordCount,
			OriginalLength: msg.res.OriginalLength,
			Method:         msg.res.Method,
			CreatedAt:      msg.at,
		}}, m.records...)
		m.cursor = 0
		m.input.SetValue("")
		m.status = fmt.Sprintf("Summarized %d words into %d.", msg.res.OriginalLength, msg.res.WordCount)
		if msg.res.Title != "" {
			m.status += " " + msg.res.Title
		}
		m.viewport.SetContent(m.renderCurrent())
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		for i, r := range m.records {
			if r.ID == msg.id {
				m.records = append(m.records[:i], m.records[i+1:]...)
				break
			}
		}
		if m.cursor >= len(m.records) {
			m.cursor = max(0, len(m.records)-1)
		}
		m.status = fmt.Sprintf("Deleted summary #%d.", msg.id)
		m.viewport.SetContent(m.renderCurrent())
		return m, nil

	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" && !m.busy {
				m.busy = true
				m.status = "Summarizing..."
				return m, m.summarize(q)
			}
			return m, nil
		case "down":
			if len(m.records) > 0 {
				m.cursor = (m.cursor + 1) % len(m.records)
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		case "up":
			if len(m.records) > 0 {
				m.cursor = (m.cursor - 1 + len(m.records)) % len(m.records)
				m.viewport.SetContent(m.renderCurrent())
				return m, nil
			}
		case "ctrl+x":
			if len(m.records) > 0 && m.records[m.cursor].ID != 0 {
				return m, m.deleteRecord(m.records[m.cursor].ID)
			}
			return m, nil
		case "pgdown", "pgup":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current summary.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Article Summarizer") +
		helpStyle.Render("  enter: summarize  up/down: history  ctrl+x: delete  esc: quit")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderCurrent() string {
	if len(m.records) == 0 {
		return "No summaries yet."
	}
	r := m.records[m.cursor]
	title := fmt.Sprintf("Summary %d/%d", m.cursor+1, len(m.records))
	if r.ID != 0 {
		title += fmt.Sprintf("  #%d", r.ID)
	}
	meta := fmt.Sprintf("%s  %d -> %d words", r.SourceType, r.OriginalLength, r.WordCount)
	if !r.CreatedAt.IsZero() {
		meta += "  " + r.CreatedAt.Local().Format("2006-01-02 15:04")
	}
	if r.SourceType == domain.SourceURL && r.SourceContent != "" {
		meta += "\n" + r.SourceContent
	}
	body := lipgloss.NewStyle().Width(m.viewport.Width).Render(r.Summary)
	return titleStyle.Render(title) + "\n" + helpStyle.Render(meta) + "\n\n" + body
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
