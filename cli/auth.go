package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	adminkit "github.com/tokenbrush/adminkit"
)

func newLoginCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "login",
		Description: "Sign in to the admin console",
		Flags:       flag.NewFlagSet("login", flag.ExitOnError),
	}

	email := cmd.Flags.String("email", "", "Account email or username")
	password := cmd.Flags.String("password", "", "Account password (prompted when omitted)")
	remember := cmd.Flags.Bool("remember", false, "Persist the credential so later invocations reuse it")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *email == "" {
			return fmt.Errorf("email is required")
		}
		pw := *password
		if pw == "" {
			var err error
			if pw, err = c.promptLine("password"); err != nil {
				return err
			}
		}

		user, err := c.Controller.Login(context.Background(), *email, pw, *remember)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if user == nil {
			// Signed in but not an admin; the controller already tore the
			// session down.
			return fmt.Errorf("account is not an administrator")
		}

		c.Log.Info("signed in", zap.String("user_id", user.ID))
		fmt.Fprintf(c.Out, "Signed in as %s (%s)\n", user.Username, strings.Join(user.Roles, ","))
		return nil
	}

	return cmd
}

func newLogoutCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "logout",
		Description: "Sign out and clear the stored credential",
		Flags:       flag.NewFlagSet("logout", flag.ExitOnError),
	}

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if err := c.Controller.Logout(context.Background()); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		fmt.Fprintln(c.Out, "Signed out")
		return nil
	}

	return cmd
}

func newWhoamiCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "whoami",
		Description: "Show the current session",
		Flags:       flag.NewFlagSet("whoami", flag.ExitOnError),
	}

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}

		sess := c.Controller.Session()
		if !sess.Authenticated() {
			fmt.Fprintf(c.Out, "Not signed in (%s)\n", sess.Status)
			return nil
		}

		u := sess.User
		c.table([][]string{
			{"ID", "EMAIL", "USERNAME", "ROLES"},
			{u.ID, u.Email, u.Username, strings.Join(u.Roles, ",")},
		})
		return nil
	}

	return cmd
}

func newRegisterCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "register",
		Description: "Create a new account",
		Flags:       flag.NewFlagSet("register", flag.ExitOnError),
	}

	email := cmd.Flags.String("email", "", "Account email")
	username := cmd.Flags.String("username", "", "Account username")
	password := cmd.Flags.String("password", "", "Account password (prompted when omitted)")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *email == "" || *username == "" {
			return fmt.Errorf("email and username are required")
		}
		pw := *password
		if pw == "" {
			var err error
			if pw, err = c.promptLine("password"); err != nil {
				return err
			}
		}

		err := c.Controller.Register(context.Background(), adminkit.RegisterRequest{
			Email:    *email,
			Username: *username,
			Password: pw,
		})
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Fprintf(c.Out, "Account %s registered\n", *username)
		return nil
	}

	return cmd
}

func newForgotPasswordCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "forgot-password",
		Description: "Request a password reset email",
		Flags:       flag.NewFlagSet("forgot-password", flag.ExitOnError),
	}

	email := cmd.Flags.String("email", "", "Account email")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *email == "" {
			return fmt.Errorf("email is required")
		}

		if err := c.Controller.RequestPasswordReset(context.Background(), *email); err != nil {
			return fmt.Errorf("reset request: %w", err)
		}
		fmt.Fprintln(c.Out, "If the account exists, a reset email is on its way")
		return nil
	}

	return cmd
}

func newChangePasswordCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "change-password",
		Description: "Change the signed-in account's password",
		Flags:       flag.NewFlagSet("change-password", flag.ExitOnError),
	}

	current := cmd.Flags.String("current", "", "Current password (prompted when omitted)")
	next := cmd.Flags.String("new", "", "New password (prompted when omitted)")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		cur, nw := *current, *next
		var err error
		if cur == "" {
			if cur, err = c.promptLine("current password"); err != nil {
				return err
			}
		}
		if nw == "" {
			if nw, err = c.promptLine("new password"); err != nil {
				return err
			}
		}

		err = c.Controller.ChangePassword(context.Background(), adminkit.ChangePasswordRequest{
			CurrentPassword: cur,
			NewPassword:     nw,
		})
		if err != nil {
			return fmt.Errorf("change password: %w", err)
		}
		fmt.Fprintln(c.Out, "Password changed")
		return nil
	}

	return cmd
}
