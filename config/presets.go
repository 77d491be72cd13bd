package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"breakeven/server/internal/models"
)

// DefaultPresetName is the name of the built-in parameter preset.
const DefaultPresetName = "default"

// Preset is a named bundle of loan and rent parameters.
type Preset struct {
	Name string                `yaml:"name" json:"name"`
	Loan models.LoanParameters `yaml:"loan" json:"loan"`
	Rent models.RentParameters `yaml:"rent" json:"rent"`
}

type presetsFile struct {
	Presets []Preset `yaml:"presets"`
}

var (
	presetRegistry = []Preset{DefaultPreset()}
	presetLock     sync.RWMutex
)

// DefaultPreset mirrors the product defaults.
func DefaultPreset() Preset {
	return Preset{
		Name: DefaultPresetName,
		Loan: models.LoanParameters{
			PropertyValue:             22000000,
			DownPaymentPercent:        10,
			AnnualInterestRatePercent: 7.4,
			TenureYears:               20,
		},
		Rent: models.RentParameters{
			MonthlyRent:           75000,
			AnnualIncreasePercent: 5,
			VacancyMonthsPerYear:  1,
		},
	}
}

// LoadPresets replaces the registry with the presets from a YAML file. The
// built-in default stays available unless the file defines its own.
func LoadPresets(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read presets file: %v", err)
	}

	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse presets file: %v", err)
	}

	presets := make([]Preset, 0, len(file.Presets)+1)
	hasDefault := false
	for i, p := range file.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset %d has no name", i)
		}
		if p.Name == DefaultPresetName {
			hasDefault = true
		}
		presets = append(presets, p)
	}
	if !hasDefault {
		presets = append([]Preset{DefaultPreset()}, presets...)
	}

	presetLock.Lock()
	presetRegistry = presets
	presetLock.Unlock()
	return nil
}

// GetPresets returns the registered presets.
func GetPresets() []Preset {
	presetLock.RLock()
	defer presetLock.RUnlock()

	out := make([]Preset, len(presetRegistry))
	copy(out, presetRegistry)
	return out
}

// GetPresetByName returns a preset by name, or nil when unknown.
func GetPresetByName(name string) *Preset {
	presetLock.RLock()
	defer presetLock.RUnlock()

	for _, p := range presetRegistry {
		if p.Name == name {
			preset := p
			return &preset
		}
	}
	return nil
}

// resetPresets restores the built-in registry, for tests.
func resetPresets() {
	presetLock.Lock()
	presetRegistry = []Preset{DefaultPreset()}
	presetLock.Unlock()
}
