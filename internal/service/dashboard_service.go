package service

import (
	"strings"

	"github.com/24KD1A0503/jn/internal/models"
)

var roleCards = map[models.Role][]models.Card{
	models.RoleTourist: {
		{Icon: "👤", Title: "My Profile", Description: "Manage personal information and emergency contacts"},
		{Icon: "🚗", Title: "Vehicle Assistance", Description: "Find nearby fuel stations, mechanics, and tire repair"},
		{Icon: "🏥", Title: "Medical Assistance", Description: "Emergency medical help and nearby hospitals"},
		{Icon: "👮", Title: "Police Assistance", Description: "Report incidents and get police help"},
		{Icon: "📞", Title: "Emergency Contacts", Description: "Manage your emergency contact list"},
		{Icon: "🗺️", Title: "Plan a Trip", Description: "Plan safe routes and get travel recommendations"},
	},
	models.RolePolice: {
		{Icon: "🚨", Title: "SOS Alerts", Description: "Monitor and respond to emergency alerts"},
		{Icon: "👥", Title: "Tourist Records", Description: "View tourist information and tracking data"},
		{Icon: "📋", Title: "E-FIR Generator", Description: "Generate electronic FIRs automatically"},
	},
	models.RoleHospital: {
		{Icon: "🚑", Title: "Medical Alerts", Description: "Receive and respond to medical emergencies"},
		{Icon: "👨‍⚕️", Title: "Patient Information", Description: "Access tourist medical information"},
		{Icon: "🚨", Title: "Ambulance Dispatch", Description: "Coordinate ambulance services"},
	},
	models.RoleTourism: {
		{Icon: "📊", Title: "Tourist Analytics", Description: "View tourism statistics and trends"},
		{Icon: "🗺️", Title: "Safety Heatmap", Description: "Monitor tourist safety zones and hotspots"},
		{Icon: "⚠️", Title: "Risk Monitoring", Description: "Track and assess safety risks in real-time"},
	},
}

type DashboardService struct{}

func NewDashboardService() *DashboardService { return &DashboardService{} }

// For builds the dashboard of u's role. Only tourists get the SOS button.
func (DashboardService) For(u models.User) (*models.DashboardView, error) {
	cards, ok := roleCards[u.Role]
	if !ok {
		return nil, ErrUnknownRole
	}
	out := make([]models.Card, len(cards))
	copy(out, cards)

	role := string(u.Role)
	return &models.DashboardView{
		Title:      strings.ToUpper(role[:1]) + role[1:] + " Dashboard",
		Welcome:    "Welcome, " + u.FullName + " (" + role + ")",
		Role:       u.Role,
		SOSEnabled: u.Role == models.RoleTourist,
		Cards:      out,
	}, nil
}
