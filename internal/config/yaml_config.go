package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"reprocheck/internal/models"
)

// RulesConfig represents the structure of the optional rules.yaml file.
// The built-in vocabulary, hyperparameter and seed-call lists cover the
// common ML stack; a rules file replaces whichever lists it sets.
type RulesConfig struct {
	Vocabulary      []string                `yaml:"vocabulary"`
	Hyperparameters []models.Hyperparameter `yaml:"hyperparameters"`
	SeedCalls       []string                `yaml:"seed_calls"`
}

// LoadRulesConfig loads the YAML rules file.
// Path is determined by RULES_FILE env var, defaulting to "rules.yaml".
// Returns nil without error if the file doesn't exist.
func LoadRulesConfig() (*RulesConfig, error) {
	return loadRulesFile(getEnv("RULES_FILE", "rules.yaml"))
}

// LoadRulesFile loads a rules file from an explicit path.
func LoadRulesFile(path string) (*RulesConfig, error) {
	return loadRulesFile(path)
}

func loadRulesFile(path string) (*RulesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Rules file is optional
			return nil, nil
		}
		return nil, err
	}

	var rules RulesConfig
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	return &rules, nil
}
