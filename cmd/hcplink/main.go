package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ajramos/hcplink/internal/config"
	"github.com/ajramos/hcplink/internal/services"
	"github.com/ajramos/hcplink/internal/tui"
	"github.com/ajramos/hcplink/internal/version"
)

const configEnv = "HCPLINK_CONFIG"

func main() {
	configPathFlag := flag.String("config", "", "Path to JSON configuration file (default: ~/.config/hcplink/config.json)")
	setupFlag := flag.Bool("setup", false, "Create a default configuration and theme")
	versionFlag := flag.Bool("version", false, "Show version information and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\n", version.GetVersionString())
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  %s  Override default config file path\n", configEnv)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Println(version.GetDetailedVersionString())
		return
	}

	configPath := getConfigPath(*configPathFlag)

	if *setupFlag {
		if err := runSetup(configPath, config.DefaultThemesDir()); err != nil {
			fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	manager := config.NewManager()
	if err := manager.LoadFromFile(configPath); err != nil {
		log.Printf("Warning: could not load configuration: %v", err)
		manager.LoadFromDefaults()
	}

	// The modal state is owned here and handed to every consumer
	modal := services.NewHCPLinkModalService()

	app := tui.NewApp(manager.GetConfig(), manager, modal)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// getConfigPath returns the configuration file path using the following priority:
// 1. CLI flag
// 2. Environment variable HCPLINK_CONFIG
// 3. Default path ~/.config/hcplink/config.json
func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return config.ExpandHome(flagValue)
	}

	if envPath := os.Getenv(configEnv); envPath != "" {
		return config.ExpandHome(envPath)
	}

	return config.DefaultConfigPath()
}

// setupConfig is the default configuration with one example resource
func setupConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Resources = []config.ResourceConfig{
		{
			ID:          "example",
			Name:        "Example cluster",
			Type:        "cluster",
			LinkStatus:  "unknown",
			Description: "Replace with a resource to link to HCP",
		},
	}
	return cfg
}

// runSetup writes a default configuration and the default theme when they
// do not exist yet. Existing files are left alone.
func runSetup(configPath, themesDir string) error {
	fmt.Println("HCP Link setup")
	fmt.Println("==============")

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Configuration file already exists: %s\n", configPath)
	} else {
		manager := config.NewManager()
		if err := manager.UpdateConfig(setupConfig()); err != nil {
			return fmt.Errorf("create config: %w", err)
		}
		if err := manager.SaveToFile(configPath); err != nil {
			return fmt.Errorf("create config: %w", err)
		}
		fmt.Printf("Created configuration file: %s\n", configPath)
	}

	loader := config.NewThemeLoader(themesDir)
	themePath := filepath.Join(themesDir, config.DefaultThemeName+".yaml")
	if _, err := os.Stat(themePath); err == nil {
		fmt.Printf("Theme already exists: %s\n", themePath)
	} else {
		if err := loader.CreateDefaultTheme(); err != nil {
			return fmt.Errorf("create theme: %w", err)
		}
		fmt.Printf("Created theme: %s\n", themePath)
	}

	fmt.Println()
	fmt.Println("Edit the \"resources\" list in the config file, then run:")
	fmt.Printf("   %s\n", os.Args[0])
	return nil
}
