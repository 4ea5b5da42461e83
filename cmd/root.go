package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"condo-cli/api"
	"condo-cli/logger"
	"condo-cli/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	outputJSON    bool
	outputCompact bool
	cfg           Config
	client        = api.NewClient()
)

type Config struct {
	APIBaseURL   string `json:"api_base_url"`
	DefaultScope string `json:"default_scope"`
	Debug        bool   `json:"debug"`
}

var rootCmd = &cobra.Command{
	Use:   "condo",
	Short: "Administration console for the condominium platform",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputJSON && outputCompact {
			return fmt.Errorf("choose either --json or --compact")
		}
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(areasCmd())
	rootCmd.AddCommand(availabilityCmd())
	rootCmd.AddCommand(reserveCmd())
	rootCmd.AddCommand(reservationsCmd())
	rootCmd.AddCommand(conceptsCmd())
	rootCmd.AddCommand(chargesCmd())
	rootCmd.AddCommand(paymentsCmd())
	rootCmd.AddCommand(announcementsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&outputCompact, "compact", false, "Output compact text")
}

func initConfig() {
	_ = godotenv.Load()

	loaded, err := loadConfig()
	if err == nil {
		cfg = loaded
	}
	if url := os.Getenv("CONDO_API_URL"); url != "" {
		cfg.APIBaseURL = url
	}
	if cfg.APIBaseURL != "" {
		client.BaseURL = cfg.APIBaseURL
	}
	if cfg.DefaultScope == "" {
		cfg.DefaultScope = "mine"
	}

	if dir, err := storage.ConfigDir(); err == nil {
		_ = logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: dir})
	}
}

func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var conf Config
	if err := json.NewDecoder(file).Decode(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func configPath() (string, error) {
	dir, err := storage.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
