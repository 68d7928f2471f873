package main

import (
	"errors"
	"fmt"
	"os"

	"taskdesk/internal/activity"
	"taskdesk/internal/category"
	"taskdesk/internal/config"
	"taskdesk/internal/storage"
	"taskdesk/internal/task"
	"taskdesk/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	gateway, err := storage.New(cfg.DataDir, cfg.TasksFile, cfg.CategoriesFile)
	if err != nil {
		fmt.Printf("failed to prepare data directory: %v\n", err)
		os.Exit(1)
	}

	log := activity.Open(cfg.LogFile)

	tasks, err := gateway.LoadTasks()
	if err != nil {
		// Starting with an empty list would overwrite the file on the next
		// save, so a corrupt task file stops the program instead.
		fmt.Printf("cannot read task file: %v\n", err)
		os.Exit(1)
	}
	store := task.NewStore()
	store.Replace(tasks)

	names, err := gateway.LoadCategories()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn(fmt.Sprintf("category file unreadable, using defaults: %v", err))
		}
		names = nil
	}
	cats := category.New(names, gateway.SaveCategories)

	if err := ui.Run(store, cats, gateway, log, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
