package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pigpong/internal/storage"
)

// maxJournalRows is how many finished matches the journal view loads.
const maxJournalRows = 100

var (
	journalTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("213"))
	journalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	journalEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true).
				Padding(2, 4)
)

// JournalView lists the session's finished matches in a table.
type JournalView struct {
	table   table.Model
	records []storage.MatchRecord
	summary storage.Summary
	width   int
	height  int
}

// NewJournalView creates an empty journal view for a terminal size.
func NewJournalView(width, height int) JournalView {
	j := JournalView{width: width, height: height}
	j.table = j.createTable()
	return j
}

func (j JournalView) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Hits", Width: 5},
		{Title: "Rally", Width: 6},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(j.height-8, 3)), // Leave room for title, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Load reads the latest matches from store.
func (j *JournalView) Load(store *storage.Store) error {
	records, err := store.RecentMatches(maxJournalRows)
	if err != nil {
		return err
	}
	summary, err := store.Summary()
	if err != nil {
		return err
	}
	j.SetRecords(records, summary)
	return nil
}

// SetRecords replaces the listed matches, newest first.
func (j *JournalView) SetRecords(records []storage.MatchRecord, summary storage.Summary) {
	j.records = records
	j.summary = summary

	rows := make([]table.Row, len(records))
	for i, rec := range records {
		winner := rec.Winner
		if rec.WinnerHuman() {
			winner += " (you)"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", rec.ID),
			winner,
			fmt.Sprintf("%d:%d", rec.ScoreLeft, rec.ScoreRight),
			fmt.Sprintf("%d", rec.Hits),
			fmt.Sprintf("%d", rec.LongestRally),
			(time.Duration(rec.DurationMs) * time.Millisecond).Round(time.Second).String(),
		}
	}
	j.table.SetRows(rows)
	j.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (j *JournalView) Resize(width, height int) {
	j.width = width
	j.height = height
	j.table = j.createTable()
	j.SetRecords(j.records, j.summary)
}

// Update scrolls the table.
func (j JournalView) Update(msg tea.Msg) (JournalView, tea.Cmd) {
	var cmd tea.Cmd
	j.table, cmd = j.table.Update(msg)
	return j, cmd
}

// View renders the journal.
func (j JournalView) View() string {
	title := journalTitleStyle.Render("SESSION JOURNAL")

	var body string
	if len(j.records) == 0 {
		body = journalEmptyStyle.Render("No matches finished yet.\nClaim a gate and play one!")
	} else {
		body = j.table.View()
	}

	s := j.summary
	summary := fmt.Sprintf("%d matches · left %d · right %d · won by players %d · longest rally %d",
		s.Matches, s.LeftWins, s.RightWins, s.HumanWins, s.LongestRally)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		journalBoxStyle.Render(body),
		journalStyle.Render(summary),
	)
	return lipgloss.PlaceHorizontal(j.width, lipgloss.Center, content)
}
