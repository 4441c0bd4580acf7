package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/24KD1A0503/jn/internal/client"
	"github.com/24KD1A0503/jn/internal/config"
	"github.com/24KD1A0503/jn/pkg/logger"
)

// app is what every subcommand shares once the root has run.
type app struct {
	cfg     config.ClientConfig
	api     *client.Client
	session *client.SessionHolder
	log     zerolog.Logger
	now     func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}
	var (
		verbose bool
		apiURL  string
	)

	root := &cobra.Command{
		Use:   "jatayu",
		Short: "JatayuNetra command-line client",
		Long: `jatayu talks to a JatayuNetra backend.

Log in once with a username, password and role. The session is kept on disk
until you log out, so later commands run as that user.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			env := "quiet"
			if verbose {
				env = "dev"
			}
			a.log = logger.NewWithWriter(os.Stderr, env)

			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			a.cfg = cfg
			a.api = client.New(cfg.APIURL, cfg.Timeout)
			a.session = client.NewSessionHolder(cfg.SessionFile)
			a.log.Debug().Str("api", a.api.BaseURL()).Str("session", cfg.SessionFile).Msg("client ready")
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides JATAYU_API_URL)")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.pingCmd(),
		a.dashboardCmd(),
		a.sosCmd(),
	)
	return root
}
