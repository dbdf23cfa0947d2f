package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shamanec/GADS-sim-provider/models"
)

// overlayData is the shape of a catalog overlay file. Entries replace
// built-ins with the same name, new names are added.
type overlayData struct {
	Devices    []models.DeviceType `json:"devices-catalog"`
	OSVersions []models.OSVersion  `json:"os-catalog"`
}

// LoadOverlay merges the JSON overlay file at the given path over the
// built-in tables and notifies subscribers. On error the current tables are
// kept untouched.
func (c *Static) LoadOverlay(path string) error {
	overlay, err := readOverlayFile(path)
	if err != nil {
		return err
	}

	c.rebuild(overlay)
	c.notify()
	return nil
}

func readOverlayFile(path string) (*overlayData, error) {
	overlayFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open the catalog overlay file - %w", err)
	}
	defer overlayFile.Close()

	bs, err := io.ReadAll(overlayFile)
	if err != nil {
		return nil, fmt.Errorf("could not read the catalog overlay file - %w", err)
	}

	var overlay overlayData
	if err := json.Unmarshal(bs, &overlay); err != nil {
		return nil, fmt.Errorf("could not unmarshal the catalog overlay file - %w", err)
	}
	return &overlay, nil
}
