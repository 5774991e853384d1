package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tokenbrush/adminkit/api"
)

func newTokensCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "tokens",
		Description: "Inspect and adjust token balances",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("tokens", flag.ExitOnError),
	}

	cmd.Subcommands["balance"] = newTokensBalanceCommand(c)
	cmd.Subcommands["history"] = newTokensHistoryCommand(c)
	cmd.Subcommands["credit"] = newTokensAdjustCommand(c, "credit")
	cmd.Subcommands["debit"] = newTokensAdjustCommand(c, "debit")

	return cmd
}

func newTokensBalanceCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "balance",
		Description: "Show a user's token balance",
		Flags:       flag.NewFlagSet("tokens balance", flag.ExitOnError),
	}

	user := cmd.Flags.String("user", "", "User ID")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *user == "" {
			return fmt.Errorf("user is required")
		}
		if err := c.requireAdmin("/tokens"); err != nil {
			return err
		}

		balance, err := c.Controller.API().Tokens.Balance(context.Background(), *user)
		if err != nil {
			return fmt.Errorf("balance: %w", err)
		}
		fmt.Fprintf(c.Out, "%d\n", balance)
		return nil
	}

	return cmd
}

func newTokensHistoryCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "history",
		Description: "Show a user's token transaction history",
		Flags:       flag.NewFlagSet("tokens history", flag.ExitOnError),
	}

	user := cmd.Flags.String("user", "", "User ID")
	limit := cmd.Flags.Int("limit", 20, "Page size")
	cursor := cmd.Flags.String("cursor", "", "Pagination cursor from a previous page")
	txType := cmd.Flags.String("type", "", "Filter by transaction type (credit, debit)")
	reason := cmd.Flags.String("reason", "", "Filter by adjustment reason")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *user == "" {
			return fmt.Errorf("user is required")
		}
		if err := c.requireAdmin("/tokens"); err != nil {
			return err
		}

		page, err := c.Controller.API().Tokens.History(context.Background(), *user, api.HistoryParams{
			Limit:  *limit,
			Cursor: *cursor,
			Type:   *txType,
			Reason: *reason,
		})
		if err != nil {
			return fmt.Errorf("history: %w", err)
		}

		rows := [][]string{{"ID", "AMOUNT", "TYPE", "REASON", "CREATED"}}
		for _, tx := range page.Items {
			rows = append(rows, []string{
				tx.ID, strconv.FormatInt(tx.Amount, 10), tx.Type, tx.Reason, tx.CreatedAt,
			})
		}
		c.table(rows)
		if page.NextCursor != "" {
			fmt.Fprintf(c.Out, "\nNext page: -cursor %s\n", page.NextCursor)
		}
		return nil
	}

	return cmd
}

func newTokensAdjustCommand(c *Console, direction string) *Command {
	cmd := &Command{
		Name:        direction,
		Description: fmt.Sprintf("%s tokens on a user's balance", direction),
		Flags:       flag.NewFlagSet("tokens "+direction, flag.ExitOnError),
	}

	user := cmd.Flags.String("user", "", "User ID")
	amount := cmd.Flags.Int64("amount", 0, "Token amount (positive)")
	reason := cmd.Flags.String("reason", "", "Adjustment reason")
	notes := cmd.Flags.String("notes", "", "Free-form operator notes")
	key := cmd.Flags.String("idempotency-key", "", "Reuse a key when retrying a failed adjustment")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *user == "" {
			return fmt.Errorf("user is required")
		}
		if *amount <= 0 {
			return fmt.Errorf("amount must be positive")
		}
		if *reason == "" {
			return fmt.Errorf("reason is required")
		}
		if err := c.requireAdmin("/tokens"); err != nil {
			return err
		}

		req := api.AdjustmentRequest{
			Amount:         *amount,
			Reason:         *reason,
			Notes:          *notes,
			IdempotencyKey: *key,
		}

		adjust := c.Controller.API().Tokens.Credit
		if direction == "debit" {
			adjust = c.Controller.API().Tokens.Debit
		}

		usedKey, err := adjust(context.Background(), *user, req)
		if err != nil {
			// The key identifies the attempt; reusing it makes the retry safe.
			if usedKey != "" {
				return fmt.Errorf("%s failed, retry with -idempotency-key %s: %w", direction, usedKey, err)
			}
			return fmt.Errorf("%s: %w", direction, err)
		}

		c.Log.Info("balance adjusted",
			zap.String("user_id", *user),
			zap.String("direction", direction),
			zap.Int64("amount", *amount),
			zap.String("idempotency_key", usedKey))
		fmt.Fprintf(c.Out, "Applied %s of %d tokens (key %s)\n", direction, *amount, usedKey)
		return nil
	}

	return cmd
}
