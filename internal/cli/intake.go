package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"freeflow-cli/internal/model"

	"github.com/spf13/cobra"
)

func newIntakeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Email-to-project intake",
	}
	cmd.AddCommand(newIntakeParseCmd(app))
	cmd.AddCommand(newIntakeCreateCmd(app))
	return cmd
}

func newIntakeParseCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Run AI extraction over a raw inquiry email",
		Long: strings.TrimSpace(`
Run AI extraction over a raw inquiry email read from --file or stdin.

The returned draft carries a status field: intake_complete and needs_review
drafts can be edited and passed to "intake create"; malicious_email and
unable_to_parse drafts cannot be created as-is.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, file)
			if err != nil {
				return writeErr(cmd, err)
			}
			if strings.TrimSpace(raw) == "" {
				return writeErr(cmd, fmt.Errorf("empty inquiry text"))
			}

			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			draft, err := sc.Client.ParseEmail(cmd.Context(), raw)
			if err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "intake.parse", "", string(draft.Status))
			return writeOut(cmd, app, map[string]any{"data": draft})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the inquiry from this file instead of stdin")
	return cmd
}

func newIntakeCreateCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client and project from an (edited) intake draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, file)
			if err != nil {
				return writeErr(cmd, err)
			}

			var draft model.IntakeDraft
			if err := json.Unmarshal([]byte(raw), &draft); err != nil {
				return writeErr(cmd, fmt.Errorf("invalid draft JSON: %w", err))
			}
			// Flagged inquiries are discard-only, same as the review screen.
			if draft.Status == model.IntakeMalicious {
				return writeErr(cmd, fmt.Errorf("draft was flagged as a prompt-injection attempt; it cannot be created"))
			}
			if strings.TrimSpace(draft.Client.Email) == "" || strings.TrimSpace(draft.Project.Title) == "" {
				return writeErr(cmd, fmt.Errorf("draft needs at least client.email and project.title"))
			}

			sc, err := requireSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := sc.Client.CreateManualIntake(cmd.Context(), draft)
			if err != nil {
				return writeErr(cmd, err)
			}

			recordAction(cmd.Context(), "intake.create", res.ProjectID, draft.Project.Title)
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the draft JSON from this file instead of stdin")
	return cmd
}

func readInput(cmd *cobra.Command, file string) (string, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
