package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DaveSteven/schedule-tui/internal/config"
	"github.com/DaveSteven/schedule-tui/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  schedule config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.Calendar.ICSFiles = promptSlice(reader, "ICS files (comma-separated)", cfg.Calendar.ICSFiles)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)
	cfg.UI.DefaultView = promptValue(reader, "Default view (day/week)", cfg.UI.DefaultView)
	cfg.UI.DefaultColor = promptValue(reader, "Default event color", cfg.UI.DefaultColor)
	cfg.Drag.MoveThreshold = promptInt(reader, "Drag move threshold", cfg.Drag.MoveThreshold)
	cfg.Drag.DateThreshold = promptInt(reader, "Drag date threshold", cfg.Drag.DateThreshold)
	cfg.Drag.ActivationDelayMS = promptInt(reader, "Drag activation delay (ms)", cfg.Drag.ActivationDelayMS)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[storage]")
	fmt.Printf("  db_path             = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[calendar]")
	fmt.Printf("  ics_files           = %s\n", strings.Join(cfg.Calendar.ICSFiles, ", "))
	fmt.Println("\n[ui]")
	fmt.Printf("  theme               = %s\n", cfg.UI.Theme)
	fmt.Printf("  default_view        = %s\n", cfg.UI.DefaultView)
	fmt.Printf("  default_color       = %s\n", cfg.UI.DefaultColor)
	fmt.Println("\n[drag]")
	fmt.Printf("  move_threshold      = %d\n", cfg.Drag.MoveThreshold)
	fmt.Printf("  date_threshold      = %d\n", cfg.Drag.DateThreshold)
	fmt.Printf("  activation_delay_ms = %d\n", cfg.Drag.ActivationDelayMS)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Printf("  Not a number: %q\n", value)
	}
}

func promptSlice(reader *bufio.Reader, label string, current []string) []string {
	currentStr := strings.Join(current, ", ")
	fmt.Printf("  %s [%s]: ", label, currentStr)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
