package handlers

import (
	"github.com/concave-dev/tabula/cmd/tabulactl/client"
	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/cmd/tabulactl/display"
	"github.com/concave-dev/tabula/cmd/tabulactl/utils"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/table"
	"github.com/spf13/cobra"
)

// HandleParse handles the parse command. Input is projected locally unless
// --remote sends it to tabulad.
func HandleParse(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	mode, err := table.ParseMode(config.Parse.Mode)
	if err != nil {
		logging.Error("%v", err)
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var projection table.Projection
	if config.Parse.Remote {
		apiClient := client.CreateAPIClient()
		logging.Info("Parsing %d bytes through API server: %s", len(input), apiClient.BaseURL())

		remote, err := apiClient.Parse(string(input), mode)
		if err != nil {
			logAPIError("Remote parse failed", err)
			return err
		}
		projection = *remote
	} else {
		projection = table.Project(string(input), mode)
	}

	display.DisplayProjection(projection)
	logging.Success("Parsed %d items (%s mode)", projection.Count(), projection.Mode)
	return nil
}
