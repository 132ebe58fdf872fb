package models

// Hyperparameter describes one named numeric configuration value expected to
// appear in both the paper and the code, with the spellings used to find it.
type Hyperparameter struct {
	Name    string   `yaml:"name"`    // canonical name, e.g. "learning_rate"
	Aliases []string `yaml:"aliases"` // identifier spellings in code, e.g. "lr"
	Phrases []string `yaml:"phrases"` // prose spellings in papers, e.g. "learning rate"
}
