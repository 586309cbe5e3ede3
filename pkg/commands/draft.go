package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/commands/options"
	"tableflip.dev/appt/pkg/runner/draft"
)

type doer interface {
	Do(ctx context.Context) error
}

func addDraft(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Build an appointment step by step across invocations.",
		Long: `The draft is kept on disk between invocations. Fill it with "draft set",
or load an existing appointment with "draft edit", then send it with "draft submit".`,
		Example: `
appt draft set patientName Jane
appt draft set department Cardiology
appt draft show
appt draft submit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddSessionArg(cmd, so)

	addDraftShow(cmd, so)
	addDraftSet(cmd, so)
	addDraftEdit(cmd, so)
	addDraftSubmit(cmd, so)
	addDraftCancel(cmd, so)
	addDraftList(cmd, so)

	topLevel.AddCommand(cmd)
}

// runDraft wires a draft runner to a fresh env and runs it.
func runDraft(ctx context.Context, so *options.SessionOptions, oo *options.OutputOptions, build func(draft.Session) doer) error {
	e, err := newEnv(false)
	if err != nil {
		return oo.HandleError(err)
	}
	defer e.close()
	p, err := e.persistence()
	if err != nil {
		return oo.HandleError(err)
	}
	s := draft.Session{
		Name:        so.Name,
		Persistence: p,
		Scheduler:   e.scheduler,
		Printer:     oo.Printer(),
	}
	return oo.HandleError(build(s).Do(ctx))
}

func addDraftShow(parent *cobra.Command, so *options.SessionOptions) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the draft and whether it creates or edits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraft(cmd.Context(), so, oo, func(s draft.Session) doer {
				return &draft.Show{Session: s}
			})
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addDraftSet(parent *cobra.Command, so *options.SessionOptions) {
	oo := &options.OutputOptions{}
	var field appointment.Field

	names := make([]string, 0, len(appointment.FieldOrder()))
	for _, f := range appointment.FieldOrder() {
		names = append(names, string(f))
	}

	cmd := &cobra.Command{
		Use:   "set <field> [value...]",
		Short: "Set one field of the draft.",
		Long: fmt.Sprintf("Set one field of the draft. Values are stored as typed; nothing is checked until submit.\n\nFields: %s",
			strings.Join(names, ", ")),
		Example: `
appt draft set patientName Jane Doe
appt draft set reason
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return err
			}
			var err error
			field, err = appointment.ParseField(args[0])
			return err
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return options.Complete(names, toComplete), cobra.ShellCompDirectiveNoFileComp
			case 1:
				if f, err := appointment.ParseField(args[0]); err == nil && f.IsChoice() {
					return options.Complete(f.Choices(), toComplete), cobra.ShellCompDirectiveNoFileComp
				}
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strings.Join(args[1:], " ")
			return runDraft(cmd.Context(), so, oo, func(s draft.Session) doer {
				return &draft.Set{Session: s, Field: field, Value: value}
			})
		},
	}
	parent.AddCommand(cmd)
}

func addDraftEdit(parent *cobra.Command, so *options.SessionOptions) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Load an appointment from the list into the draft for editing.",
		Args:  options.IDArg(io),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraft(cmd.Context(), so, oo, func(s draft.Session) doer {
				return &draft.Edit{Session: s, ID: io.ID}
			})
		},
	}
	parent.AddCommand(cmd)
}

func addDraftSubmit(parent *cobra.Command, so *options.SessionOptions) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Add or update the appointment, depending on the draft mode.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraft(cmd.Context(), so, oo, func(s draft.Session) doer {
				return &draft.Submit{Session: s}
			})
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addDraftCancel(parent *cobra.Command, so *options.SessionOptions) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the draft and return to adding a new appointment.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraft(cmd.Context(), so, oo, func(s draft.Session) doer {
				return &draft.Cancel{Session: s}
			})
		},
	}
	parent.AddCommand(cmd)
}

func addDraftList(parent *cobra.Command, so *options.SessionOptions) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved drafts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDraft(cmd.Context(), so, oo, func(s draft.Session) doer {
				return &draft.List{Session: s}
			})
		},
	}
	parent.AddCommand(cmd)
}
