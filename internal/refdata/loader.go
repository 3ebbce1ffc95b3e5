// Package refdata loads the JSON reference files the generation commands
// consume and writes the JSON output documents they produce.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/feeds"
)

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// LoadProvinces reads the province reference file. The history generator
// needs every province to carry its station list, so a province without
// one fails the load outright.
func LoadProvinces(path string) ([]*domain.Province, error) {
	var provinces []*domain.Province
	if err := loadJSON(path, &provinces); err != nil {
		return nil, err
	}
	if len(provinces) == 0 {
		return nil, fmt.Errorf("%s: no provinces", path)
	}
	for _, p := range provinces {
		if p.Info.ProvinceCode == "" {
			return nil, fmt.Errorf("%s: province %q has no provinceCode", path, p.Info.Name)
		}
		if p.Stations == nil {
			return nil, fmt.Errorf("%s: province %s has no stations", path, p.Info.ProvinceCode)
		}
	}
	return provinces, nil
}

// LoadProvinceInfos reads a province reference file for the snapshot path,
// which attaches stations from the feeds instead of the reference file.
func LoadProvinceInfos(path string) ([]*domain.Province, error) {
	var provinces []*domain.Province
	if err := loadJSON(path, &provinces); err != nil {
		return nil, err
	}
	if len(provinces) == 0 {
		return nil, fmt.Errorf("%s: no provinces", path)
	}
	return provinces, nil
}

// LoadElevations reads a station-elevations file produced by the elevation
// resolution job.
func LoadElevations(path string) ([]domain.StationElevation, error) {
	var list []domain.StationElevation
	if err := loadJSON(path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadHAIIStations reads and converts an HAII station feed dump.
func LoadHAIIStations(path string) ([]*domain.Station, error) {
	var raw []feeds.HAIIStation
	if err := loadJSON(path, &raw); err != nil {
		return nil, err
	}
	return feeds.FromHAII(raw), nil
}

// LoadTMDStations reads and converts a TMD station feed dump.
func LoadTMDStations(path string) ([]*domain.Station, error) {
	var raw []feeds.TMDStation
	if err := loadJSON(path, &raw); err != nil {
		return nil, err
	}
	return feeds.FromTMD(raw), nil
}

// LoadGrid reads a row-major numeric grid, as exported for the landslide
// risk map and its loss companion.
func LoadGrid(path string) ([][]float64, error) {
	var grid [][]float64
	if err := loadJSON(path, &grid); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%s: empty grid", path)
	}
	return grid, nil
}
