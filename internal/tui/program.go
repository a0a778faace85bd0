package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelsos/elevenlabs-workspace/internal/logger"
)

// ErrCancelled is returned when the user quits the editor without saving
var ErrCancelled = errors.New("sharing editor closed without saving")

// RunSharingEditor opens the interactive editor and returns the saved group IDs
func RunSharingEditor(ctx context.Context, api SharingAPI) ([]string, error) {
	program := tea.NewProgram(NewModel(ctx, api), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("sharing editor: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("sharing editor: unexpected model %T", final)
	}

	saved, stage, runErr := model.Outcome()
	switch stage {
	case StageSaved:
		logger.Info("Saved %d default sharing group(s)", len(saved))
		return saved, nil
	case StageFailed:
		return nil, runErr
	default:
		return nil, ErrCancelled
	}
}
