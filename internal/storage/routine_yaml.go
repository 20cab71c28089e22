package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sunrise/internal/core/model"
	"gopkg.in/yaml.v3"
)

const routineFileName = "routine.yaml"

type yamlStep struct {
	Name    string  `yaml:"name"`
	Minutes float64 `yaml:"minutes"`
	Link    string  `yaml:"link,omitempty"`
}

type yamlRoutine struct {
	Steps []yamlStep `yaml:"steps"`
}

// LoadRoutine reads the routine definition from YAML.
// If the file does not exist, the default routine is returned.
func LoadRoutine(appName string) (model.Routine, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return model.DefaultRoutine(), err
	}
	return loadFromPath(configPath)
}

// WriteDefault creates a starter routine file if none exists, so users
// have a template to edit. Returns the file path.
func WriteDefault(appName string) (string, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat routine file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlRoutine{}
	for _, step := range model.DefaultRoutine().Steps {
		fileData.Steps = append(fileData.Steps, yamlStep{
			Name:    step.Name,
			Minutes: step.Duration,
			Link:    step.Link,
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return "", fmt.Errorf("marshal routine yaml: %w", err)
	}
	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return "", fmt.Errorf("write routine file: %w", err)
	}

	return configPath, nil
}

func loadFromPath(configPath string) (model.Routine, error) {
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultRoutine(), nil
		}
		return model.DefaultRoutine(), fmt.Errorf("read routine file: %w", err)
	}

	var fileData yamlRoutine
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.DefaultRoutine(), fmt.Errorf("parse routine yaml: %w", err)
	}

	routine := applyYamlRoutine(fileData)
	if len(routine.Steps) == 0 {
		return model.DefaultRoutine(), nil
	}
	return routine, nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, routineFileName), nil
}

func applyYamlRoutine(fileData yamlRoutine) model.Routine {
	steps := make([]model.Step, 0, len(fileData.Steps))
	for _, step := range fileData.Steps {
		if step.Name == "" {
			continue
		}
		steps = append(steps, model.Step{
			Name:     step.Name,
			Duration: step.Minutes,
			Link:     step.Link,
		})
	}
	return model.Routine{Steps: model.SanitizeSteps(steps)}
}
