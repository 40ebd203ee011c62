package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "skillbridge"
)

type Config struct {
	AI       *AIConfig       `mapstructure:"ai"`
	GitHub   *GitHubConfig   `mapstructure:"github"`
	Analysis *AnalysisConfig `mapstructure:"analysis"`
	Cache    *CacheConfig    `mapstructure:"cache"`
}

type AIConfig struct {
	// Provider selects the backend: none, gemini, openai, anthropic,
	// or ollama.
	Provider  string           `mapstructure:"provider"`
	Gemini    *GeminiConfig    `mapstructure:"gemini"`
	OpenAI    *OpenAIConfig    `mapstructure:"openai"`
	Anthropic *AnthropicConfig `mapstructure:"anthropic"`
	Ollama    *OllamaConfig    `mapstructure:"ollama"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	BaseURL    string `mapstructure:"base-url"`
}

type AnthropicConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	BaseURL    string `mapstructure:"base-url"`
}

type OllamaConfig struct {
	BaseURL string `mapstructure:"base-url"`
	Model   string `mapstructure:"model"`
}

type GitHubConfig struct {
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token-file"`
}

type AnalysisConfig struct {
	MaxRecommendations int `mapstructure:"max-recommendations"`
}

type CacheConfig struct {
	Disabled   bool `mapstructure:"disabled"`
	TTLSeconds int  `mapstructure:"ttl-seconds"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skillbridge analyzes a GitHub profile against a job description and recommends portfolio projects that close the gap",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envBindings := map[string]string{
		"github.token":           "GITHUB_TOKEN",
		"github.token-file":      "GITHUB_TOKEN_FILE",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
		"ai.openai.api-key-file": "OPENAI_API_KEY_FILE",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillbridge.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A local .env is a convenience for tokens. Missing is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// The config file is optional, everything has defaults. A file
	// that exists but does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	return config, nil
}

func (c *Config) maxRecommendations() int {
	if c.Analysis == nil {
		return 0
	}
	return c.Analysis.MaxRecommendations
}

func (c *Config) providerName() string {
	if c.AI == nil {
		return ""
	}
	return c.AI.Provider
}
