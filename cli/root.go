package cli

import (
	"flag"
	"fmt"
)

// Command represents a CLI command
type Command struct {
	Name        string
	Description string
	Run         func(args []string) error
	Subcommands map[string]*Command
	Flags       *flag.FlagSet
}

// NewRootCommand creates the root command with all subcommands bound to the
// given console.
func NewRootCommand(c *Console) *Command {
	root := &Command{
		Name:        "tbadmin",
		Description: "tbadmin - Token service admin console",
		Subcommands: make(map[string]*Command),
		Flags:       flag.NewFlagSet("tbadmin", flag.ExitOnError),
	}

	// Session and account commands
	root.Subcommands["login"] = newLoginCommand(c)
	root.Subcommands["logout"] = newLogoutCommand(c)
	root.Subcommands["whoami"] = newWhoamiCommand(c)
	root.Subcommands["register"] = newRegisterCommand(c)
	root.Subcommands["forgot-password"] = newForgotPasswordCommand(c)
	root.Subcommands["change-password"] = newChangePasswordCommand(c)

	// Resource commands
	root.Subcommands["users"] = newUsersCommand(c)
	root.Subcommands["tokens"] = newTokensCommand(c)
	root.Subcommands["operations"] = newOperationsCommand(c)
	root.Subcommands["templates"] = newTemplatesCommand(c)
	root.Subcommands["styles"] = newStylesCommand(c)
	root.Subcommands["hints"] = newHintsCommand(c)

	return root
}

// Execute runs the command selected by args.
func (c *Command) Execute(args []string) error {
	if len(args) == 0 {
		return c.usage()
	}

	if args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		return c.usage()
	}

	if subcmd, ok := c.Subcommands[args[0]]; ok {
		if subcmd.Run != nil {
			return subcmd.Run(args[1:])
		}
		return subcmd.Execute(args[1:])
	}

	return fmt.Errorf("unknown command: %s", args[0])
}

// usage prints the command usage
func (c *Command) usage() error {
	fmt.Printf("Usage: %s <command> [args]\n\n", c.Name)
	fmt.Printf("Commands:\n")
	for name, cmd := range c.Subcommands {
		fmt.Printf("  %-17s %s\n", name, cmd.Description)
	}
	return nil
}
