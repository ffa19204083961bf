package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "CORD_EXPLORER_CONFIG"
	dataPathEnv   = "CORD_DATA_PATH"
	cachePathEnv  = "CORD_CLEANED_PATH"
	exportDirEnv  = "CORD_EXPORT_DIR"
	logLevelEnv   = "CORD_LOG_LEVEL"
	sqlitePathEnv = "CORD_SQLITE_PATH"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Data     DataConfig     `yaml:"data"`
	Cleaning CleaningConfig `yaml:"cleaning"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Export   ExportConfig   `yaml:"export"`
}

// LoggingConfig controls diagnostic verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DataConfig points at the raw dataset and the pre-cleaned cache.
type DataConfig struct {
	Path string `yaml:"path"`
	// CleanedPath, when the file exists, is loaded verbatim instead of
	// running the cleaning pipeline.
	CleanedPath string `yaml:"cleanedPath"`
	// SampleSize truncates loading to this many rows; 0 loads everything.
	SampleSize int `yaml:"sampleSize"`
}

// CleaningConfig parameterizes the cleaning stages.
type CleaningConfig struct {
	DropThreshold  float64  `yaml:"dropThreshold"`
	DateColumns    []string `yaml:"dateColumns"`
	TextColumns    []string `yaml:"textColumns"`
	TitleColumn    string   `yaml:"titleColumn"`
	AbstractColumn string   `yaml:"abstractColumn"`
	AuthorsColumn  string   `yaml:"authorsColumn"`
	YearMin        int      `yaml:"yearMin"`
	YearMax        int      `yaml:"yearMax"`
}

// AnalysisConfig names the aggregate inputs and ranking sizes. Candidate
// column lists are tried in order; the first present column wins.
type AnalysisConfig struct {
	JournalColumns []string `yaml:"journalColumns"`
	SourceColumns  []string `yaml:"sourceColumns"`
	TopJournals    int      `yaml:"topJournals"`
	TopWords       int      `yaml:"topWords"`
	MinWordLength  int      `yaml:"minWordLength"`
}

// ExportConfig names the aggregate output targets.
type ExportConfig struct {
	Dir string `yaml:"dir"`
	// SQLitePath enables the SQLite sink when non-empty.
	SQLitePath string `yaml:"sqlitePath"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(dataPathEnv); v != "" {
		c.Data.Path = v
	}
	if v := os.Getenv(cachePathEnv); v != "" {
		c.Data.CleanedPath = v
	}
	if v := os.Getenv(exportDirEnv); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv(sqlitePathEnv); v != "" {
		c.Export.SQLitePath = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Data.Path != "" {
		base.Data.Path = override.Data.Path
	}
	if override.Data.CleanedPath != "" {
		base.Data.CleanedPath = override.Data.CleanedPath
	}
	if override.Data.SampleSize > 0 {
		base.Data.SampleSize = override.Data.SampleSize
	}

	if override.Cleaning.DropThreshold > 0 {
		base.Cleaning.DropThreshold = override.Cleaning.DropThreshold
	}
	if len(override.Cleaning.DateColumns) > 0 {
		base.Cleaning.DateColumns = override.Cleaning.DateColumns
	}
	if len(override.Cleaning.TextColumns) > 0 {
		base.Cleaning.TextColumns = override.Cleaning.TextColumns
	}
	if override.Cleaning.TitleColumn != "" {
		base.Cleaning.TitleColumn = override.Cleaning.TitleColumn
	}
	if override.Cleaning.AbstractColumn != "" {
		base.Cleaning.AbstractColumn = override.Cleaning.AbstractColumn
	}
	if override.Cleaning.AuthorsColumn != "" {
		base.Cleaning.AuthorsColumn = override.Cleaning.AuthorsColumn
	}
	if override.Cleaning.YearMin != 0 {
		base.Cleaning.YearMin = override.Cleaning.YearMin
	}
	if override.Cleaning.YearMax != 0 {
		base.Cleaning.YearMax = override.Cleaning.YearMax
	}

	if len(override.Analysis.JournalColumns) > 0 {
		base.Analysis.JournalColumns = override.Analysis.JournalColumns
	}
	if len(override.Analysis.SourceColumns) > 0 {
		base.Analysis.SourceColumns = override.Analysis.SourceColumns
	}
	if override.Analysis.TopJournals > 0 {
		base.Analysis.TopJournals = override.Analysis.TopJournals
	}
	if override.Analysis.TopWords > 0 {
		base.Analysis.TopWords = override.Analysis.TopWords
	}
	if override.Analysis.MinWordLength > 0 {
		base.Analysis.MinWordLength = override.Analysis.MinWordLength
	}

	if override.Export.Dir != "" {
		base.Export.Dir = override.Export.Dir
	}
	if override.Export.SQLitePath != "" {
		base.Export.SQLitePath = override.Export.SQLitePath
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Data: DataConfig{
			Path:        "data/metadata.csv",
			CleanedPath: "data/cleaned_metadata.csv",
			SampleSize:  10000,
		},
		Cleaning: CleaningConfig{
			DropThreshold:  0.70,
			DateColumns:    []string{"publish_time"},
			TextColumns:    []string{"title", "abstract"},
			TitleColumn:    "title",
			AbstractColumn: "abstract",
			AuthorsColumn:  "authors",
			YearMin:        2019,
			YearMax:        2023,
		},
		Analysis: AnalysisConfig{
			JournalColumns: []string{"journal", "source_x"},
			SourceColumns:  []string{"source_x", "url", "pmcid"},
			TopJournals:    20,
			TopWords:       50,
			MinWordLength:  3,
		},
		Export: ExportConfig{Dir: "exports"},
	}
}
