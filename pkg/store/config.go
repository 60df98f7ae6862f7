package store

import (
	"log"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries everything the app reads from the environment or the
// optional .emo config file.
type Config interface {
	BasePath() string
	APIURL() string
	GeminiKey() string
	OpenAIKey() string
	ClaudeKey() string
}

// LoadConfig resolves configuration from a .emo file in the working
// directory (or EMO_CONFIG_PATH) and EMO_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.emo.db")
	viper.SetDefault("api_url", "http://localhost:8000/api")
	viper.SetConfigName(".emo") // .yaml is implicit
	viper.SetEnvPrefix("EMO")
	viper.AutomaticEnv()

	if override := os.Getenv("EMO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path:   expandHome(viper.GetString("path")),
		API:    viper.GetString("api_url"),
		Gemini: viper.GetString("gemini_api_key"),
		OpenAI: viper.GetString("openai_api_key"),
		Claude: viper.GetString("claude_api_key"),
	}, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

type fileConfig struct {
	Path   string `json:"path"`
	API    string `json:"api_url"`
	Gemini string `json:"gemini_api_key"`
	OpenAI string `json:"openai_api_key"`
	Claude string `json:"claude_api_key"`
}

func (f *fileConfig) BasePath() string  { return f.Path }
func (f *fileConfig) APIURL() string    { return f.API }
func (f *fileConfig) GeminiKey() string { return f.Gemini }
func (f *fileConfig) OpenAIKey() string { return f.OpenAI }
func (f *fileConfig) ClaudeKey() string { return f.Claude }
