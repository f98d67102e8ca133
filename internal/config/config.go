// Package config contains the configuration for the mcat CLI
//
// Configuration can come from files or environment variables. File based
// configuration works similar to unix config file hierarchy where there is a
// "user" config file found under $HOME, and also a local config in the
// current repository root (referred to as "local" config).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	git "github.com/go-git/go-git/v5"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	appData             = "AppData"
	configFilePath      = "mcat.yaml"
	localConfigFilePath = "." + configFilePath
	xdgConfigHome       = "XDG_CONFIG_HOME"
	envPrefix           = "METACAT"
)

type fileConfig struct {
	Server      string `yaml:"server,omitempty"`
	APIToken    string `yaml:"api_token,omitempty"`
	Service     string `yaml:"service,omitempty"`
	OpenAIToken string `yaml:"openai_token,omitempty"`
}

// Config contains the configuration for the catalog server the CLI talks to.
// Tokens are only stored in the user file to reduce the likelihood of them
// being committed to VCS.
type Config struct {
	fs        afero.Fs
	env       *viper.Viper
	userPath  string
	localPath string

	user  fileConfig
	local fileConfig
}

// New loads config from the user file, a repo-local file (when inside a git
// repository) and METACAT_* environment variables
func New(fs afero.Fs, repo *git.Repository) *Config {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.AutomaticEnv()

	userPath := configFile()
	localPath := localConfigFilePath
	if repo != nil {
		if wt, _ := repo.Worktree(); wt != nil {
			localPath = filepath.Join(wt.Filesystem.Root(), localConfigFilePath)
		}
	}

	userCfg, userErr := loadFileConfig(fs, userPath)
	if userErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read config %s: %v\n", userPath, userErr)
	}

	localCfg, localErr := loadFileConfig(fs, localPath)
	if localErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read config %s: %v\n", localPath, localErr)
	}

	return &Config{
		fs:        fs,
		env:       env,
		userPath:  userPath,
		localPath: localPath,
		user:      userCfg,
		local:     localCfg,
	}
}

// ServerURL gets the catalog server base URL. Environment overrides local,
// local overrides user configuration.
func (conf *Config) ServerURL() string {
	return firstNonEmpty(
		conf.env.GetString("server"),
		conf.local.Server,
		conf.user.Server,
	)
}

// APIToken gets the API token for the configured server
func (conf *Config) APIToken() string {
	return firstNonEmpty(
		conf.env.GetString("token"),
		conf.user.APIToken,
	)
}

// DefaultService gets the service whose pipelines commands operate on when
// no --service flag is given
func (conf *Config) DefaultService() string {
	return firstNonEmpty(
		conf.env.GetString("service"),
		conf.local.Service,
		conf.user.Service,
	)
}

// OpenAIToken gets the token used for AI assisted commands
func (conf *Config) OpenAIToken() string {
	return firstNonEmpty(
		conf.env.GetString("openai_token"),
		conf.user.OpenAIToken,
	)
}

// SetOpenAIToken stores the OpenAI token in the user configuration file
func (conf *Config) SetOpenAIToken(token string) error {
	conf.user.OpenAIToken = token
	return conf.writeUser()
}

// SetServer stores the server URL in the user configuration file
func (conf *Config) SetServer(server string) error {
	conf.user.Server = server
	return conf.writeUser()
}

// SetToken stores the API token in the user configuration file
func (conf *Config) SetToken(token string) error {
	conf.user.APIToken = token
	return conf.writeUser()
}

// SelectService sets the default service. Inside a git repository it is
// written to the repo-local file so teams can share it.
func (conf *Config) SelectService(service string, inGitRepo bool) error {
	if !inGitRepo {
		conf.user.Service = service
		return conf.writeUser()
	}

	conf.local.Service = service
	return conf.writeLocal()
}

func (conf *Config) writeUser() error {
	return writeFileConfig(conf.fs, conf.userPath, conf.user)
}

func (conf *Config) writeLocal() error {
	return writeFileConfig(conf.fs, conf.localPath, conf.local)
}

func loadFileConfig(fs afero.Fs, path string) (fileConfig, error) {
	var cfg fileConfig

	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return cfg, err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func writeFileConfig(fs afero.Fs, path string, cfg fileConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(fs, path, data, 0o600)
}

func firstNonEmpty(s ...string) string {
	for _, k := range s {
		if k != "" {
			return k
		}
	}

	return ""
}

// Config path precedence: XDG_CONFIG_HOME, AppData (windows only), HOME.
func configFile() string {
	var path string
	if a := os.Getenv(xdgConfigHome); a != "" {
		path = filepath.Join(a, "mcat", configFilePath)
	} else if b := os.Getenv(appData); runtime.GOOS == "windows" && b != "" {
		path = filepath.Join(b, "Metacat CLI", configFilePath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return configFilePath
		}
		path = filepath.Join(home, ".config", "mcat", configFilePath)
	}
	return path
}
