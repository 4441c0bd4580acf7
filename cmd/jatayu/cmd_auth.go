package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/24KD1A0503/jn/internal/credentials"
	"github.com/24KD1A0503/jn/internal/models"
)

var errNotLoggedIn = errors.New("not logged in: run 'jatayu login' first")

func (a *app) loginCmd() *cobra.Command {
	var username, password, role, demo string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Example: `  jatayu login --username priya_sharma --password Tourist@123 --role tourist
  jatayu login --demo police`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if demo != "" {
				seed, ok := credentials.DemoFor(models.Role(strings.ToLower(demo)))
				if !ok {
					return fmt.Errorf("no demo account for role %q", demo)
				}
				username, password, role = seed.Username, seed.Password, string(seed.Role)
			}

			ctx := cmd.Context()
			if _, err := a.api.TestConnection(ctx); err != nil {
				a.log.Debug().Err(err).Msg("connection test failed")
				return err
			}

			sess, err := a.api.Login(ctx, username, password, models.Role(role))
			if err != nil {
				return err
			}
			if err := a.session.OnLoginSuccess(*sess); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			a.log.Debug().Str("username", sess.User.Username).Str("role", string(sess.User.Role)).Msg("logged in")

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Login successful.")+" Welcome, "+sess.User.FullName+"!")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().StringVarP(&role, "role", "r", "", "tourist, police, hospital or tourism")
	cmd.Flags().StringVar(&demo, "demo", "", "use the demo account for this role")
	cmd.MarkFlagsMutuallyExclusive("demo", "username")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, ok := a.session.CurrentUser()
			if !ok {
				return errNotLoggedIn
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) %s\n", u.FullName, u.Username, mutedStyle.Render("role: "+string(u.Role)))
			return nil
		},
	}
}

// requireSession is the gate in front of every page-like command.
func (a *app) requireSession() (*models.Session, error) {
	s, ok := a.session.Current()
	if !ok {
		return nil, errNotLoggedIn
	}
	return s, nil
}
