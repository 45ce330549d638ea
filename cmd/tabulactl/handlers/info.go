package handlers

import (
	"github.com/concave-dev/tabula/cmd/tabulactl/client"
	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/cmd/tabulactl/display"
	"github.com/concave-dev/tabula/cmd/tabulactl/utils"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/spf13/cobra"
)

// HandleInfo handles the info command.
func HandleInfo(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching daemon health from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	health, err := apiClient.GetHealth()
	if err != nil {
		logAPIError("Failed to reach tabulad", err)
		return err
	}

	display.DisplayHealth(config.Global.APIAddr, health)
	logging.Success("tabulad %s is %s", health.Version, health.Status)
	return nil
}
