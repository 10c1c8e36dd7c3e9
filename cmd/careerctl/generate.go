package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/phrazzld/careerforge/internal/client"
	"github.com/phrazzld/careerforge/internal/generation"
	"github.com/phrazzld/careerforge/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type generateOptions struct {
	notes     string
	notesFile string
	role      string
	tone      string
	format    string
	timeout   time.Duration
}

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate career content from notes",
		Long: `Generate sends the notes, target role and tone to the careerforge endpoint
and prints the result. Notes come from --notes, --notes-file (use - for stdin),
or standard input when neither flag is given.

The endpoint defaults to $CAREERFORGE_ENDPOINT, then ` + client.DefaultEndpoint + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, v, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.notes, "notes", "", "raw career notes")
	flags.StringVar(&opts.notesFile, "notes-file", "", "read notes from a file (- for stdin)")
	flags.StringVar(&opts.role, "role", "", "target role, e.g. \"Senior Backend Engineer\"")
	flags.StringVar(&opts.tone, "tone", string(generation.ToneProfessional), "tone: Professional, Friendly or Bold")
	flags.StringVar(&opts.format, "format", string(render.FormatText), "output format: text, markdown, html or json")
	flags.DurationVar(&opts.timeout, "timeout", 0, "give up after this long (0 waits indefinitely)")
	flags.String("endpoint", client.DefaultEndpoint, "generation endpoint URL")
	_ = v.BindPFlag("endpoint", flags.Lookup("endpoint"))

	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, opts *generateOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return fail(cmd, err)
	}

	notes, err := readNotes(cmd.InOrStdin(), opts)
	if err != nil {
		return fail(cmd, err)
	}

	c, err := client.New(v.GetString("endpoint"))
	if err != nil {
		return fail(cmd, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	session := client.NewSession(c)
	result, err := session.Submit(ctx, generation.Request{
		RawNotes: notes,
		Role:     opts.role,
		Tone:     opts.tone,
	})
	if err != nil {
		return fail(cmd, err)
	}

	return render.Write(cmd.OutOrStdout(), format, result)
}

func readNotes(stdin io.Reader, opts *generateOptions) (string, error) {
	switch {
	case opts.notes != "" && opts.notesFile != "":
		return "", errors.New("use either --notes or --notes-file, not both")
	case opts.notes != "":
		return opts.notes, nil
	case opts.notesFile == "" || opts.notesFile == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read notes from stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(opts.notesFile)
		if err != nil {
			return "", fmt.Errorf("failed to read notes: %w", err)
		}
		return string(data), nil
	}
}

// fail prints err the way the UI shows a failed generation and returns it so
// the process exits non-zero.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Generation failed: %s", err.Error()))
	return err
}
