package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/trip/pkg/commands/options"
	"tableflip.dev/trip/pkg/runner/plan"
	"tableflip.dev/trip/pkg/validate"
)

func addConfirm(topLevel *cobra.Command) {
	var name, email string

	cmd := &cobra.Command{
		Use:   "confirm [participant id]",
		Short: "confirm attendance to a trip you were invited to",
		Long: base.Wrap80("Confirm attendance to a trip you were invited to. Missing --name or " +
			"--email are asked for when running in a terminal."),
		Example: `
trip confirm 0190c6e2-9d21-7c11-b0a4-4bb1c3a0e9f2 --name "Bia Souza" --email bia@example.com
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			filled := func(s string) bool { return strings.TrimSpace(s) != "" }
			if err := options.PromptMissing("Nome completo", &name, filled, "Preencha o nome."); err != nil {
				return err
			}
			if err := options.PromptMissing("E-mail", &email, validate.Email, "E-mail inválido."); err != nil {
				return err
			}
			svc, log, closeLog, err := services()
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			c := plan.Confirm{
				Services:      svc,
				Logger:        log,
				Out:           cmd.OutOrStdout(),
				ParticipantID: args[0],
				Name:          name,
				Email:         email,
			}
			return c.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your full name.")
	cmd.Flags().StringVar(&email, "email", "", "The e-mail the invitation was sent to.")
	topLevel.AddCommand(cmd)
}
