package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iudanet/gophcal/internal/client/auth"
)

// Factory создает Cli при первом запуске команды, после разбора флагов
type Factory func(ctx context.Context) (*Cli, error)

type runFunc func(ctx context.Context, c *Cli, args []string) error

func (f Factory) run(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := f(cmd.Context())
		if err != nil {
			return err
		}
		return fn(cmd.Context(), c, args)
	}
}

func outputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", FormatText, "output format: text, json or yaml")
}

// Commands returns the client subcommands
func Commands(factory Factory) []*cobra.Command {
	return []*cobra.Command{
		signUpCmd(factory),
		loginCmd(factory),
		socialLoginCmd(factory, "login-apple", auth.KindApple),
		socialLoginCmd(factory, "login-kakao", auth.KindKakao),
		logoutCmd(factory),
		statusCmd(factory),
		whoAmICmd(factory),
		monthCmd(factory),
		dayCmd(factory),
		addCmd(factory),
		deleteCmd(factory),
		upcomingCmd(factory),
		watchCmd(factory),
	}
}

func signUpCmd(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Create an email/password account",
		Args:  cobra.NoArgs,
		RunE: factory.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runSignUp(ctx)
		}),
	}
}

func loginCmd(factory Factory) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: factory.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runLogin(ctx, email)
		}),
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted when empty)")
	return cmd
}

func socialLoginCmd(factory Factory, use string, kind auth.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Sign in with " + providerTitle(kind),
		Args:  cobra.NoArgs,
		RunE: factory.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runSocialLogin(ctx, kind)
		}),
	}
}

func logoutCmd(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of every provider and wipe stored credentials",
		Args:  cobra.NoArgs,
		RunE: factory.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runLogout(ctx)
		}),
	}
}

func statusCmd(factory Factory) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which providers have an active session",
		Args:  cobra.NoArgs,
		RunE: factory.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runStatus(ctx, format)
		}),
	}
	outputFlag(cmd, &format)
	return cmd
}

func whoAmICmd(factory Factory) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the active user",
		Args:  cobra.NoArgs,
		RunE: factory.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runWhoAmI(ctx, format)
		}),
	}
	outputFlag(cmd, &format)
	return cmd
}

func monthCmd(factory Factory) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "List the events of a month (current by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: factory.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runMonth(ctx, firstArg(args), format)
		}),
	}
	outputFlag(cmd, &format)
	return cmd
}

func dayCmd(factory Factory) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "List the events of a day (today by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: factory.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runDay(ctx, firstArg(args), format)
		}),
	}
	outputFlag(cmd, &format)
	return cmd
}

func addCmd(factory Factory) *cobra.Command {
	var in addInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Args:  cobra.NoArgs,
		RunE: factory.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runAdd(ctx, in)
		}),
	}
	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "event title (prompted when empty)")
	cmd.Flags().StringVarP(&in.Date, "date", "d", "", "event date YYYY-MM-DD (today by default)")
	cmd.Flags().StringVar(&in.Time, "time", "", "event time HH:MM (00:00 by default)")
	return cmd
}

func deleteCmd(factory Factory) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: factory.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runDelete(ctx, args[0], date)
		}),
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "event date YYYY-MM-DD, selects the month to look in (today by default)")
	return cmd
}

func upcomingCmd(factory Factory) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List events from today on",
		Args:  cobra.NoArgs,
		RunE: factory.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runUpcoming(ctx, format)
		}),
	}
	outputFlag(cmd, &format)
	return cmd
}

func watchCmd(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [YYYY-MM]",
		Short: "Follow session and event changes of a month until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: factory.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runWatch(ctx, firstArg(args))
		}),
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
