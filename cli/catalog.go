package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/tokenbrush/adminkit/api"
)

func newOperationsCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "operations",
		Description: "Manage the token pricing table",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("operations", flag.ExitOnError),
	}

	cmd.Subcommands["list"] = newOperationsListCommand(c)
	cmd.Subcommands["create"] = newOperationsCreateCommand(c)
	cmd.Subcommands["price"] = newOperationsPriceCommand(c)
	cmd.Subcommands["delete"] = newResourceDeleteCommand(c, "operations", "operation", func(ctx context.Context, id string) error {
		return c.Controller.API().Operations.Delete(ctx, id)
	})

	return cmd
}

func newOperationsListCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "list",
		Description: "List billable operations and their prices",
		Flags:       flag.NewFlagSet("operations list", flag.ExitOnError),
	}

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if err := c.requireAdmin("/operations"); err != nil {
			return err
		}

		ops, err := c.Controller.API().Operations.List(context.Background())
		if err != nil {
			return fmt.Errorf("list operations: %w", err)
		}

		rows := [][]string{{"ID", "NAME", "TOKENS", "STATE"}}
		for _, op := range ops {
			rows = append(rows, []string{
				op.ID, op.Name, strconv.FormatInt(op.TokensPerOperation, 10), formatActive(op.IsActive),
			})
		}
		c.table(rows)
		return nil
	}

	return cmd
}

func newOperationsCreateCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "create",
		Description: "Create a billable operation",
		Flags:       flag.NewFlagSet("operations create", flag.ExitOnError),
	}

	name := cmd.Flags.String("name", "", "Operation name (immutable)")
	tokens := cmd.Flags.Int64("tokens", 0, "Token price per call")
	description := cmd.Flags.String("description", "", "Operation description")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("name is required")
		}
		if err := c.requireAdmin("/operations"); err != nil {
			return err
		}

		op, err := c.Controller.API().Operations.Create(context.Background(), api.CreateOperationRequest{
			Name:               *name,
			TokensPerOperation: *tokens,
			Description:        *description,
			IsActive:           true,
		})
		if err != nil {
			return fmt.Errorf("create operation: %w", err)
		}
		fmt.Fprintf(c.Out, "Created operation %s (%s)\n", op.Name, op.ID)
		return nil
	}

	return cmd
}

func newOperationsPriceCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "price",
		Description: "Change an operation's token price",
		Flags:       flag.NewFlagSet("operations price", flag.ExitOnError),
	}

	id := cmd.Flags.String("id", "", "Operation ID")
	tokens := cmd.Flags.Int64("tokens", -1, "New token price per call")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *id == "" || *tokens < 0 {
			return fmt.Errorf("id and tokens are required")
		}
		if err := c.requireAdmin("/operations"); err != nil {
			return err
		}

		op, err := c.Controller.API().Operations.Update(context.Background(), *id, api.UpdateOperationRequest{
			TokensPerOperation: tokens,
		})
		if err != nil {
			return fmt.Errorf("update operation: %w", err)
		}
		fmt.Fprintf(c.Out, "Operation %s now costs %d tokens\n", op.Name, op.TokensPerOperation)
		return nil
	}

	return cmd
}

func newTemplatesCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "templates",
		Description: "Manage prompt templates",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("templates", flag.ExitOnError),
	}

	cmd.Subcommands["list"] = newTemplatesListCommand(c)
	cmd.Subcommands["create"] = newTemplatesCreateCommand(c)
	cmd.Subcommands["delete"] = newResourceDeleteCommand(c, "templates", "template", func(ctx context.Context, id string) error {
		return c.Controller.API().Templates.Delete(ctx, id)
	})

	return cmd
}

func newTemplatesListCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "list",
		Description: "List prompt templates",
		Flags:       flag.NewFlagSet("templates list", flag.ExitOnError),
	}

	active := cmd.Flags.Bool("active", false, "Only active templates")
	search := cmd.Flags.String("search", "", "Search by name")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if err := c.requireAdmin("/templates"); err != nil {
			return err
		}

		params := api.ListTemplatesParams{Search: *search}
		if *active {
			params.IsActive = active
		}
		templates, err := c.Controller.API().Templates.List(context.Background(), params)
		if err != nil {
			return fmt.Errorf("list templates: %w", err)
		}

		rows := [][]string{{"ID", "NAME", "STATE", "PROMPT"}}
		for _, t := range templates {
			rows = append(rows, []string{t.ID, t.Name, formatActive(t.IsActive), truncate(t.Prompt, 60)})
		}
		c.table(rows)
		return nil
	}

	return cmd
}

func newTemplatesCreateCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "create",
		Description: "Create a prompt template",
		Flags:       flag.NewFlagSet("templates create", flag.ExitOnError),
	}

	name := cmd.Flags.String("name", "", "Template name")
	prompt := cmd.Flags.String("prompt", "", "Prompt text")
	preview := cmd.Flags.String("preview-url", "", "Preview image URL")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *name == "" || *prompt == "" {
			return fmt.Errorf("name and prompt are required")
		}
		if err := c.requireAdmin("/templates"); err != nil {
			return err
		}

		t, err := c.Controller.API().Templates.Create(context.Background(), api.CreateTemplateRequest{
			Name:       *name,
			Prompt:     *prompt,
			PreviewURL: *preview,
		})
		if err != nil {
			return fmt.Errorf("create template: %w", err)
		}
		fmt.Fprintf(c.Out, "Created template %s (%s)\n", t.Name, t.ID)
		return nil
	}

	return cmd
}

func newStylesCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "styles",
		Description: "Manage style libraries",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("styles", flag.ExitOnError),
	}

	cmd.Subcommands["list"] = newStylesListCommand(c)
	cmd.Subcommands["attach"] = newStylesAttachCommand(c)
	cmd.Subcommands["delete"] = newResourceDeleteCommand(c, "styles", "style library", func(ctx context.Context, id string) error {
		return c.Controller.API().StyleLibraries.Delete(ctx, id)
	})

	return cmd
}

func newStylesListCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "list",
		Description: "List style libraries",
		Flags:       flag.NewFlagSet("styles list", flag.ExitOnError),
	}

	search := cmd.Flags.String("search", "", "Search by name")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if err := c.requireAdmin("/styles"); err != nil {
			return err
		}

		libs, err := c.Controller.API().StyleLibraries.List(context.Background(), api.ListStyleLibrariesParams{Search: *search})
		if err != nil {
			return fmt.Errorf("list style libraries: %w", err)
		}

		rows := [][]string{{"ID", "NAME", "STATE", "TEMPLATES"}}
		for _, lib := range libs {
			rows = append(rows, []string{
				lib.ID, lib.Name, formatActive(lib.IsActive), strings.Join(lib.PromptTemplateIDs, ","),
			})
		}
		c.table(rows)
		return nil
	}

	return cmd
}

func newStylesAttachCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "attach",
		Description: "Attach a prompt template to a style library",
		Flags:       flag.NewFlagSet("styles attach", flag.ExitOnError),
	}

	id := cmd.Flags.String("id", "", "Style library ID")
	template := cmd.Flags.String("template", "", "Prompt template ID")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *id == "" || *template == "" {
			return fmt.Errorf("id and template are required")
		}
		if err := c.requireAdmin("/styles"); err != nil {
			return err
		}

		lib, err := c.Controller.API().StyleLibraries.AddTemplate(context.Background(), *id, *template)
		if err != nil {
			return fmt.Errorf("attach template: %w", err)
		}
		fmt.Fprintf(c.Out, "Style library %s now holds %d templates\n", lib.Name, len(lib.PromptTemplateIDs))
		return nil
	}

	return cmd
}

func newHintsCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "hints",
		Description: "Manage prompt hints",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("hints", flag.ExitOnError),
	}

	cmd.Subcommands["list"] = newHintsListCommand(c)
	cmd.Subcommands["attach"] = newHintsAttachCommand(c)
	cmd.Subcommands["delete"] = newResourceDeleteCommand(c, "hints", "hint", func(ctx context.Context, id string) error {
		return c.Controller.API().Hints.Delete(ctx, id)
	})

	return cmd
}

func newHintsListCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "list",
		Description: "List prompt hints",
		Flags:       flag.NewFlagSet("hints list", flag.ExitOnError),
	}

	hintType := cmd.Flags.String("type", "", "Filter by hint type")
	search := cmd.Flags.String("search", "", "Search by name")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if err := c.requireAdmin("/hints"); err != nil {
			return err
		}

		hints, err := c.Controller.API().Hints.List(context.Background(), api.ListHintsParams{
			Type:   *hintType,
			Search: *search,
		})
		if err != nil {
			return fmt.Errorf("list hints: %w", err)
		}

		rows := [][]string{{"ID", "NAME", "TYPE", "STATE", "TEMPLATES"}}
		for _, h := range hints {
			rows = append(rows, []string{
				h.ID, h.Name, h.Type, formatActive(h.IsActive), strings.Join(h.PromptTemplateIDs, ","),
			})
		}
		c.table(rows)
		return nil
	}

	return cmd
}

func newHintsAttachCommand(c *Console) *Command {
	cmd := &Command{
		Name:        "attach",
		Description: "Attach a prompt template to a hint",
		Flags:       flag.NewFlagSet("hints attach", flag.ExitOnError),
	}

	id := cmd.Flags.String("id", "", "Hint ID")
	template := cmd.Flags.String("template", "", "Prompt template ID")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *id == "" || *template == "" {
			return fmt.Errorf("id and template are required")
		}
		if err := c.requireAdmin("/hints"); err != nil {
			return err
		}

		h, err := c.Controller.API().Hints.AddTemplate(context.Background(), *id, *template)
		if err != nil {
			return fmt.Errorf("attach template: %w", err)
		}
		fmt.Fprintf(c.Out, "Hint %s now holds %d templates\n", h.Name, len(h.PromptTemplateIDs))
		return nil
	}

	return cmd
}

// newResourceDeleteCommand builds the shared delete-by-id command used by the
// catalog resources.
func newResourceDeleteCommand(c *Console, screen, noun string, del func(ctx context.Context, id string) error) *Command {
	cmd := &Command{
		Name:        "delete",
		Description: fmt.Sprintf("Delete a %s", noun),
		Flags:       flag.NewFlagSet(screen+" delete", flag.ExitOnError),
	}

	id := cmd.Flags.String("id", "", "Resource ID")

	cmd.Run = func(args []string) error {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("id is required")
		}
		if err := c.requireAdmin("/" + screen); err != nil {
			return err
		}

		if err := del(context.Background(), *id); err != nil {
			return fmt.Errorf("delete %s: %w", noun, err)
		}
		fmt.Fprintf(c.Out, "Deleted %s %s\n", noun, *id)
		return nil
	}

	return cmd
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
