package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kelsos/elevenlabs-workspace/pkg/async"
	"github.com/kelsos/elevenlabs-workspace/pkg/client"
	"github.com/kelsos/elevenlabs-workspace/pkg/models"
)

type Stage string

const (
	StageLoading Stage = "loading"
	StageEditing Stage = "editing"
	StageSaving  Stage = "saving"
	StageSaved   Stage = "saved"
	StageFailed  Stage = "failed"
)

// SharingAPI is the part of the workspace client the editor needs
type SharingAPI interface {
	GetShareOptions(ctx context.Context, opts ...client.RequestOption) (*client.Response[[]models.ShareOption], error)
	GetDefaultSharingPreferences(ctx context.Context, opts ...client.RequestOption) (*client.Response[models.DefaultSharingPreferences], error)
	UpdateDefaultSharingPreferences(ctx context.Context, groups []string, opts ...client.RequestOption) (*client.Response[models.JSONValue], error)
}

type SharingLoaded struct {
	Options  []models.ShareOption
	Selected []string
}

type SharingSaved struct {
	Groups []string
}

type RequestFailed struct {
	Stage Stage
	Err   error
}

type Model struct {
	ctx      context.Context
	api      SharingAPI
	groups   []models.ShareOption
	others   int
	selected map[string]bool
	unknown  []string
	cursor   int
	stage    Stage
	err      error
	saved    []string
	spinner  spinner.Model
	width    int
	quit     bool
}

func NewModel(ctx context.Context, api SharingAPI) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		ctx:      ctx,
		api:      api,
		selected: make(map[string]bool),
		stage:    StageLoading,
		spinner:  sp,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.load(),
	)
}

// load fetches share options and current defaults concurrently
func (m Model) load() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		options := async.Go(ctx, func(ctx context.Context) (*client.Response[[]models.ShareOption], error) {
			return api.GetShareOptions(ctx)
		})
		prefs := async.Go(ctx, func(ctx context.Context) (*client.Response[models.DefaultSharingPreferences], error) {
			return api.GetDefaultSharingPreferences(ctx)
		})
		if err := async.Wait(ctx, options, prefs); err != nil {
			return RequestFailed{Stage: StageLoading, Err: err}
		}

		var msg SharingLoaded
		if resp, _ := options.Await(ctx); resp.HasData() {
			msg.Options = *resp.Data
		}
		if resp, _ := prefs.Await(ctx); resp.HasData() {
			msg.Selected = resp.Data.DefaultSharingGroups
		}
		return msg
	}
}

func (m Model) save() tea.Cmd {
	ctx, api, groups := m.ctx, m.api, m.SelectedGroups()
	return func() tea.Msg {
		if _, err := api.UpdateDefaultSharingPreferences(ctx, groups); err != nil {
			return RequestFailed{Stage: StageSaving, Err: err}
		}
		return SharingSaved{Groups: groups}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case SharingLoaded:
		m = m.handleLoaded(msg)

	case SharingSaved:
		m.stage = StageSaved
		m.saved = msg.Groups
		m.quit = true
		cmds = append(cmds, tea.Quit)

	case RequestFailed:
		m.stage = StageFailed
		m.err = fmt.Errorf("%s: %w", msg.Stage, msg.Err)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		// the request is already on its way, wait for its outcome
		if m.stage == StageSaving {
			return m, nil
		}
		m.quit = true
		return m, tea.Quit
	}

	if m.stage != StageEditing {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.groups)-1 {
			m.cursor++
		}
	case " ", "space", "x":
		if len(m.groups) > 0 {
			id := m.groups[m.cursor].ID
			m.selected[id] = !m.selected[id]
		}
	case "enter", "s":
		m.stage = StageSaving
		return m, m.save()
	}
	return m, nil
}

func (m Model) handleLoaded(msg SharingLoaded) Model {
	m.groups = nil
	m.others = 0
	known := make(map[string]bool)
	for _, option := range msg.Options {
		if option.Type != models.ShareOptionGroup {
			m.others++
			continue
		}
		m.groups = append(m.groups, option)
		known[option.ID] = true
	}

	m.selected = make(map[string]bool)
	m.unknown = nil
	for _, id := range msg.Selected {
		if known[id] {
			m.selected[id] = true
		} else {
			// kept on save, the server may hide groups from this listing
			m.unknown = append(m.unknown, id)
		}
	}

	m.cursor = 0
	m.stage = StageEditing
	return m
}

// SelectedGroups returns the group IDs to save: listed groups in listing order, then unlisted ones
func (m Model) SelectedGroups() []string {
	groups := make([]string, 0, len(m.selected)+len(m.unknown))
	for _, option := range m.groups {
		if m.selected[option.ID] {
			groups = append(groups, option.ID)
		}
	}
	return append(groups, m.unknown...)
}

// Outcome reports what happened once the program exits
func (m Model) Outcome() (saved []string, stage Stage, err error) {
	return m.saved, m.stage, m.err
}

func (m Model) View() string {
	if m.quit && m.stage != StageSaved {
		return "Bye!\n"
	}

	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginBottom(1)

	s.WriteString(headerStyle.Render("Default sharing groups"))
	s.WriteString("\n\n")

	switch m.stage {
	case StageLoading:
		s.WriteString(fmt.Sprintf("%s Loading share options...\n", m.spinner.View()))
		return s.String()
	case StageSaving:
		s.WriteString(fmt.Sprintf("%s Saving %d group(s)...\n", m.spinner.View(), len(m.SelectedGroups())))
		return s.String()
	case StageSaved:
		s.WriteString(fmt.Sprintf("Saved %d default sharing group(s).\n", len(m.saved)))
		return s.String()
	case StageFailed:
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\nPress 'q' to quit\n")
		return s.String()
	}

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	summary := fmt.Sprintf("Groups: %d | Selected: %d | Other principals: %d",
		len(m.groups), len(m.SelectedGroups()), m.others)
	s.WriteString(summaryStyle.Render(summary))
	s.WriteString("\n\n")

	listStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(max(m.width-2, 20))

	var list strings.Builder
	if len(m.groups) == 0 {
		list.WriteString("No groups available\n")
	}
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	for i, option := range m.groups {
		mark := "[ ]"
		if m.selected[option.ID] {
			mark = "[x]"
		}
		name := truncate(option.Name, 30)
		name += strings.Repeat(" ", 30-runewidth.StringWidth(name))
		line := fmt.Sprintf("%s %s %s", mark, name, option.ID)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		list.WriteString(line + "\n")
	}
	for _, id := range m.unknown {
		list.WriteString(fmt.Sprintf("  [x] %-30s %s\n", "(not listed)", id))
	}

	s.WriteString(listStyle.Render(list.String()))
	s.WriteString("\n\n")

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.WriteString(footerStyle.Render("↑/↓ move | space toggle | enter save | q quit"))

	return s.String()
}

// truncate shortens s to width terminal cells
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
