package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/24KD1A0503/jn/internal/client"
	"github.com/24KD1A0503/jn/internal/models"
)

func (a *app) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.api.TestConnection(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s at %s (%s)\n",
				successStyle.Render(h.Status), h.Service, a.api.BaseURL(), mutedStyle.Render(h.Timestamp))
			return nil
		},
	}
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for the logged-in role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.requireSession()
			if err != nil {
				return err
			}
			v, err := a.api.Dashboard(cmd.Context(), sess.Token)
			if err != nil {
				return a.dropIfRejected(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderDashboard(v))
			return nil
		},
	}
}

func (a *app) sosCmd() *cobra.Command {
	var (
		lat, lng float64
		kind     string
	)
	cmd := &cobra.Command{
		Use:   "sos",
		Short: "Send an emergency SOS alert (tourists only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.requireSession()
			if err != nil {
				return err
			}
			if sess.User.Role != models.RoleTourist {
				return fmt.Errorf("SOS is only available to tourists (logged in as %s)", sess.User.Role)
			}

			req := client.SOSRequest{
				Timestamp: a.now().UTC().Format(time.RFC3339),
				Type:      kind,
			}
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
				req.Location = &models.Location{Lat: lat, Lng: lng}
			}
			ack, err := a.api.SendSOS(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.log.Debug().Str("alertId", ack.AlertID).Msg("sos acknowledged")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", sosStyle.Render("SOS"), ack.Message, mutedStyle.Render(ack.AlertID))
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	cmd.Flags().StringVar(&kind, "type", "emergency", "alert type")
	cmd.MarkFlagsRequiredTogether("lat", "lng")
	return cmd
}

// dropIfRejected forgets a session the server no longer accepts.
func (a *app) dropIfRejected(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		if lerr := a.session.Logout(); lerr != nil {
			a.log.Warn().Err(lerr).Msg("clear session")
		}
		return fmt.Errorf("%w (%s)", errNotLoggedIn, apiErr.Message)
	}
	return err
}

func renderDashboard(v *models.DashboardView) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(v.Welcome)
	b.WriteString("\n\n")

	cards := make([]string, 0, len(v.Cards))
	for _, c := range v.Cards {
		cards = append(cards, cardStyle.Render(c.Icon+" "+lipgloss.NewStyle().Bold(true).Render(c.Title)+"\n"+c.Description))
	}
	for i := 0; i < len(cards); i += 2 {
		end := min(i+2, len(cards))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
		b.WriteString("\n")
	}
	if v.SOSEnabled {
		b.WriteString("\n")
		b.WriteString(sosStyle.Render("SOS") + " run 'jatayu sos' in an emergency\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
