package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kelsos/elevenlabs-workspace/pkg/client"
	"github.com/kelsos/elevenlabs-workspace/pkg/models"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Printer renders command results in the configured format
type Printer struct {
	w      io.Writer
	format Format
}

func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// ShareOptions prints options in server order
func (p *Printer) ShareOptions(options []models.ShareOption) error {
	if p.format == FormatJSON {
		if options == nil {
			options = []models.ShareOption{}
		}
		return p.json(options)
	}

	rows := make([][]string, 0, len(options))
	for i, option := range options {
		rows = append(rows, []string{strconv.Itoa(i + 1), option.Name, option.ID, string(option.Type)})
	}
	return p.table([]string{"#", "NAME", "ID", "TYPE"}, rows)
}

// SharingPreferences prints the default sharing groups
func (p *Printer) SharingPreferences(prefs *models.DefaultSharingPreferences) error {
	if prefs == nil {
		prefs = &models.DefaultSharingPreferences{}
	}
	if p.format == FormatJSON {
		out := *prefs
		if out.DefaultSharingGroups == nil {
			out.DefaultSharingGroups = []string{}
		}
		return p.json(out)
	}

	if len(prefs.DefaultSharingGroups) == 0 {
		_, err := fmt.Fprintln(p.w, mutedStyle.Render("No default sharing groups"))
		return err
	}
	rows := make([][]string, 0, len(prefs.DefaultSharingGroups))
	for _, group := range prefs.DefaultSharingGroups {
		rows = append(rows, []string{group})
	}
	return p.table([]string{"DEFAULT SHARING GROUP"}, rows)
}

// Value prints an opaque payload, or done when the server sent none
func (p *Printer) Value(value *models.JSONValue, done string) error {
	if p.format == FormatJSON {
		if value == nil {
			return p.json(nil)
		}
		return p.json(*value)
	}

	if value == nil || value.IsNull() {
		_, err := fmt.Fprintln(p.w, done)
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s\n%s\n", done, mutedStyle.Render(value.String()))
	return err
}

// Error prints API failures with their status and details
func (p *Printer) Error(err error) {
	var validationErr *client.UnprocessableEntityError
	if errors.As(err, &validationErr) {
		fmt.Fprintln(p.w, errorStyle.Render(fmt.Sprintf("Validation failed (HTTP %d)", validationErr.StatusCode)))
		for _, message := range validationErr.Detail.Messages() {
			fmt.Fprintf(p.w, "  - %s\n", message)
		}
		return
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(p.w, errorStyle.Render(fmt.Sprintf("Request failed (HTTP %d)", apiErr.StatusCode)))
		if body := describeBody(apiErr.Body); body != "" {
			fmt.Fprintf(p.w, "  %s\n", body)
		}
		return
	}

	fmt.Fprintln(p.w, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

func describeBody(body any) string {
	switch b := body.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return fmt.Sprintf("%v", b)
		}
		return string(encoded)
	}
}

func (p *Printer) json(v any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func (p *Printer) table(headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.w, mutedStyle.Render("No results"))
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(p.w, t.Render())
	return err
}
