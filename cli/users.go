package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/tokenbrush/adminkit/api"
)

func newUsersCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "users",
		Description: "Manage user accounts",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("users", flag.ExitOnError),
	}

	cmd.Subcommands["list"] = newUsersListCommand(c)
	cmd.Subcommands["get"] = newUsersGetCommand(c)
	cmd.Subcommands["create"] = newUsersCreateCommand(c)
	cmd.Subcommands["status"] = newUsersStatusCommand(c)
	cmd.Subcommands["delete"] = newUsersDeleteCommand(c)

	return cmd
}

func newUsersListCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "list",
		Description: "List user accounts",
		Flags:       flag.NewFlagSet("users list", flag.ExitOnError),
	}

	page := cmd.Flags.Int("page", 1, "Page number")
	limit := cmd.Flags.Int("limit", 20, "Page size")
	search := cmd.Flags.String("search", "", "Search by email or username")
	role := cmd.Flags.String("role", "", "Filter by role")
	status := cmd.Flags.String("status", "", "Filter by status")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if err := c.requireAdmin("/users"); err != nil {
			return err
		}

		result, err := c.Controller.API().Users.List(context.Background(), api.ListUsersParams{
			Page:   *page,
			Limit:  *limit,
			Search: *search,
			Role:   *role,
			Status: *status,
		})
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		rows := [][]string{{"ID", "USERNAME", "EMAIL", "ROLE", "STATUS", "TOKENS"}}
		for _, u := range result.Items {
			balance := "-"
			if u.TokenBalance != nil {
				balance = strconv.FormatInt(*u.TokenBalance, 10)
			}
			rows = append(rows, []string{u.ID, u.Username, u.Email, u.Role, u.Status, balance})
		}
		c.table(rows)
		if result.Total != nil {
			fmt.Fprintf(c.Out, "\n%d of %d users\n", len(result.Items), *result.Total)
		}
		return nil
	}

	return cmd
}

func newUsersGetCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "get",
		Description: "Show one user account",
		Flags:       flag.NewFlagSet("users get", flag.ExitOnError),
	}

	id := cmd.Flags.String("id", "", "User ID")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("id is required")
		}
		if err := c.requireAdmin("/users"); err != nil {
			return err
		}

		u, err := c.Controller.API().Users.Get(context.Background(), *id)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		balance := "-"
		if u.TokenBalance != nil {
			balance = strconv.FormatInt(*u.TokenBalance, 10)
		}
		c.table([][]string{
			{"ID", "USERNAME", "EMAIL", "ROLE", "STATUS", "TOKENS", "CREATED"},
			{u.ID, u.Username, u.Email, u.Role, u.Status, balance, u.CreatedAt},
		})
		return nil
	}

	return cmd
}

func newUsersCreateCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "create",
		Description: "Create a user account",
		Flags:       flag.NewFlagSet("users create", flag.ExitOnError),
	}

	email := cmd.Flags.String("email", "", "Account email")
	username := cmd.Flags.String("username", "", "Account username")
	password := cmd.Flags.String("password", "", "Initial password")
	role := cmd.Flags.String("role", "user", "Account role")
	tokens := cmd.Flags.Int64("tokens", 0, "Initial token balance")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *email == "" || *username == "" || *password == "" {
			return fmt.Errorf("email, username and password are required")
		}
		if err := c.requireAdmin("/users"); err != nil {
			return err
		}

		req := api.CreateUserRequest{
			Email:    *email,
			Username: *username,
			Password: *password,
			Role:     *role,
		}
		if *tokens > 0 {
			req.InitialTokens = tokens
		}

		u, err := c.Controller.API().Users.Create(context.Background(), req)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		fmt.Fprintf(c.Out, "Created user %s (%s)\n", u.Username, u.ID)
		return nil
	}

	return cmd
}

func newUsersStatusCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "status",
		Description: "Change a user account's status",
		Flags:       flag.NewFlagSet("users status", flag.ExitOnError),
	}

	id := cmd.Flags.String("id", "", "User ID")
	status := cmd.Flags.String("set", "", "New status (active, suspended, banned)")
	reason := cmd.Flags.String("reason", "", "Reason for the change")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *id == "" || *status == "" {
			return fmt.Errorf("id and set are required")
		}
		if err := c.requireAdmin("/users"); err != nil {
			return err
		}

		u, err := c.Controller.API().Users.UpdateStatus(context.Background(), *id, *status, *reason)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		fmt.Fprintf(c.Out, "User %s is now %s\n", u.ID, u.Status)
		return nil
	}

	return cmd
}

func newUsersDeleteCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "delete",
		Description: "Delete a user account",
		Flags:       flag.NewFlagSet("users delete", flag.ExitOnError),
	}

	id := cmd.Flags.String("id", "", "User ID")
	permanent := cmd.Flags.Bool("permanent", false, "Hard delete instead of soft delete")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("id is required")
		}
		if err := c.requireAdmin("/users"); err != nil {
			return err
		}

		if err := c.Controller.API().Users.Delete(context.Background(), *id, *permanent); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		fmt.Fprintf(c.Out, "Deleted user %s\n", *id)
		return nil
	}

	return cmd
}
