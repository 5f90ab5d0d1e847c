package main

import (
	"strings"

	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/views"
	"github.com/spf13/cobra"
)

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item (text can be multiple words)",
		Example: `  todo add "Buy milk"
  todo add walk the dog`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := commands.Parse("add " + strings.Join(args, " "))
			if err != nil {
				return err
			}
			return withSession(cmd, opts, func(sess *session) error {
				return runCommand(cmd.Context(), cmd.OutOrStdout(), sess, c)
			})
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items and how many are left",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(sess *session) error {
				views.RenderTable(cmd.OutOrStdout(), rowsFor(sess.store.Items()), sess.store.Remaining())
				return nil
			})
		},
	}
}

func newTargetCmd(opts *rootOptions, typ commands.Type, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := commands.Parse(string(typ) + " " + args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, opts, func(sess *session) error {
				return runCommand(cmd.Context(), cmd.OutOrStdout(), sess, c)
			})
		},
	}
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "clear-completed",
		Aliases: []string{"clear"},
		Short:   "Remove every completed item",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(sess *session) error {
				return runCommand(cmd.Context(), cmd.OutOrStdout(), sess, commands.Command{Type: commands.TypeClear})
			})
		},
	}
}

func withSession(cmd *cobra.Command, opts *rootOptions, fn func(*session) error) error {
	sess, err := openSession(cmd.Context(), cmd, opts)
	if err != nil {
		return err
	}
	defer sess.Close()
	return fn(sess)
}
