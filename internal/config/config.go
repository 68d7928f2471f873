package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName     = "config.toml"
	DefaultTasksFileName      = "tasks.json"
	DefaultCategoriesFileName = "categories.json"
	DefaultLogFileName        = "activity.log"
)

type Keymap struct {
	Quit           string `toml:"quit"`
	Add            string `toml:"add"`
	Up             string `toml:"up"`
	Down           string `toml:"down"`
	Toggle         string `toml:"toggle"`
	Delete         string `toml:"delete"`
	Edit           string `toml:"edit"`
	Confirm        string `toml:"confirm"`
	Cancel         string `toml:"cancel"`
	Search         string `toml:"search"`
	FilterDate     string `toml:"filter_date"`
	FilterCategory string `toml:"filter_category"`
	Today          string `toml:"today"`
	ShowAll        string `toml:"show_all"`
	Export         string `toml:"export"`
	Stats          string `toml:"stats"`
	CategoryAdd    string `toml:"category_add"`
	CategoryRename string `toml:"category_rename"`
	CategoryDelete string `toml:"category_delete"`
}

type Config struct {
	DataDir             string `toml:"data_dir"`
	TasksFile           string `toml:"tasks_file"`
	CategoriesFile      string `toml:"categories_file"`
	LogFile             string `toml:"log_file"`
	DefaultFilter       string `toml:"default_filter"`
	ReminderIntervalSec int    `toml:"reminder_interval_sec"`
	Keys                Keymap `toml:"keys"`
}

// ResolveConfigPath prefers the user config dir, falling back to the working
// directory when it cannot be determined.
func ResolveConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, "taskdesk", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.TasksFile == "" {
		cfg.TasksFile = DefaultTasksFileName
	}
	if cfg.CategoriesFile == "" {
		cfg.CategoriesFile = DefaultCategoriesFileName
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFileName
	}
	if cfg.ReminderIntervalSec <= 0 {
		cfg.ReminderIntervalSec = 30
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		TasksFile:           DefaultTasksFileName,
		CategoriesFile:      DefaultCategoriesFileName,
		LogFile:             DefaultLogFileName,
		DefaultFilter:       "today",
		ReminderIntervalSec: 30,
		Keys: Keymap{
			Quit:           "q",
			Add:            "a",
			Up:             "k",
			Down:           "j",
			Toggle:         " ",
			Delete:         "d",
			Edit:           "e",
			Confirm:        "enter",
			Cancel:         "esc",
			Search:         "/",
			FilterDate:     "f",
			FilterCategory: "c",
			Today:          "t",
			ShowAll:        "A",
			Export:         "x",
			Stats:          "s",
			CategoryAdd:    "C",
			CategoryRename: "R",
			CategoryDelete: "D",
		},
	}
}
