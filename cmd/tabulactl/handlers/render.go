package handlers

import (
	"fmt"

	"github.com/concave-dev/tabula/cmd/tabulactl/client"
	"github.com/concave-dev/tabula/cmd/tabulactl/config"
	"github.com/concave-dev/tabula/cmd/tabulactl/display"
	"github.com/concave-dev/tabula/cmd/tabulactl/utils"
	"github.com/concave-dev/tabula/internal/logging"
	"github.com/concave-dev/tabula/internal/table"
	"github.com/concave-dev/tabula/internal/validate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// renderModes are the input shapes the render command accepts.
var renderModes = []string{string(table.ModeList), string(table.ModeShow), string(table.ModeTable)}

// HandleRender handles the render command.
func HandleRender(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if err := validate.ValidateOneOf(config.Render.Mode, renderModes, "render mode"); err != nil {
		logging.Error("%v", err)
		return err
	}
	mode := table.Mode(config.Render.Mode)

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var rendered string
	if mode == table.ModeTable {
		var t table.Table
		if err := yaml.Unmarshal(input, &t); err != nil {
			return fmt.Errorf("invalid table input: %w", err)
		}
		rendered, err = renderTable(t)
	} else {
		records, decodeErr := decodeRecords(input)
		if decodeErr != nil {
			return decodeErr
		}
		rendered, err = renderRecords(mode, records)
	}
	if err != nil {
		logAPIError("Render failed", err)
		return err
	}

	display.DisplayRendered(rendered)
	logging.Success("Rendered %s table", mode)
	return nil
}

// decodeRecords reads a JSON or YAML array of records, or a single record.
func decodeRecords(input []byte) ([]table.Record, error) {
	var records []table.Record
	if err := yaml.Unmarshal(input, &records); err == nil {
		return records, nil
	}

	var single table.Record
	if err := yaml.Unmarshal(input, &single); err != nil {
		return nil, fmt.Errorf("invalid records input: expected an object or an array of objects with scalar values: %w", err)
	}
	return []table.Record{single}, nil
}

func renderRecords(mode table.Mode, records []table.Record) (string, error) {
	if config.Render.Remote {
		return client.CreateAPIClient().RenderRecords(mode, records)
	}

	if mode == table.ModeShow {
		var obj table.Record
		for _, r := range records {
			obj.Merge(r)
		}
		return table.RenderObject(obj), nil
	}
	return table.RenderRecords(records), nil
}

func renderTable(t table.Table) (string, error) {
	if config.Render.Remote {
		return client.CreateAPIClient().RenderTable(t)
	}
	return table.Render(t), nil
}
