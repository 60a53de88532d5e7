package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danialhaz/gigmate/internal/output"
	"github.com/danialhaz/gigmate/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your marketplace profile",
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long:  "Updates only the fields whose flags are set; everything else is left unchanged.",
	RunE:  runProfileUpdate,
}

var (
	profileHeadline     string
	profileBio          string
	profileLocation     string
	profileAvailability string
	profileHourlyRate   float64
)

func init() {
	profileUpdateCmd.Flags().StringVar(&profileHeadline, "headline", "", "Profile headline")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "Profile bio")
	profileUpdateCmd.Flags().StringVar(&profileLocation, "location", "", "Location text")
	profileUpdateCmd.Flags().StringVar(&profileAvailability, "availability", "", "Availability: available, busy, not_available")
	profileUpdateCmd.Flags().Float64Var(&profileHourlyRate, "rate", 0, "Hourly rate")

	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	profile, err := client.GetProfile(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	output.RenderProfile(printer, profile)
	return nil
}

func runProfileUpdate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	var update types.ProfileUpdate
	changed := false
	if cmd.Flags().Changed("headline") {
		update.Headline = &profileHeadline
		changed = true
	}
	if cmd.Flags().Changed("bio") {
		update.Bio = &profileBio
		changed = true
	}
	if cmd.Flags().Changed("location") {
		update.Location = &profileLocation
		changed = true
	}
	if cmd.Flags().Changed("availability") {
		update.Availability = types.Availability(profileAvailability)
		changed = true
	}
	if cmd.Flags().Changed("rate") {
		update.HourlyRate = &profileHourlyRate
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to update: set at least one of --headline, --bio, --location, --availability, --rate")
	}

	profile, err := client.UpdateProfile(context.Background(), update)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	printer.Success("Profile updated")
	output.RenderProfile(printer, profile)
	return nil
}
