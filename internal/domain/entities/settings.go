package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	logger "github.com/sirupsen/logrus"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider  = "github"
	DefaultExtractor = "native"
	DefaultBaseURL   = "https://github.com"
	DefaultAPIURL    = "https://api.github.com/"

	hclExtension = ".hcl"
)

// Settings is the merged configuration for a single run: config file values
// overridden by command-line flags.
type Settings struct {
	User        string `yaml:"user"        hcl:"user,optional"`
	Password    string `yaml:"password"    hcl:"password,optional"` // Inline, ${ENV_VAR}, or file path
	Repo        string `yaml:"repo"        hcl:"repo,optional"`     // <owner>/<name>/<ref>
	Destination string `yaml:"destination" hcl:"destination,optional"`

	Provider     string `yaml:"provider"      hcl:"provider,optional"`
	Extractor    string `yaml:"extractor"     hcl:"extractor,optional"` // "native" or "tar"
	BaseURL      string `yaml:"base_url"      hcl:"base_url,optional"`
	APIURL       string `yaml:"api_url"       hcl:"api_url,optional"`
	ManifestHost string `yaml:"manifest_host" hcl:"manifest_host,optional"`
	Retries      int    `yaml:"retries"       hcl:"retries,optional"`
	Concurrency  int    `yaml:"concurrency"   hcl:"concurrency,optional"` // 0 means unbounded
	Timeout      string `yaml:"timeout"       hcl:"timeout,optional"`     // Go duration, empty means none
	Recursive    bool   `yaml:"recursive"     hcl:"recursive,optional"`
	Verbose      bool   `yaml:"verbose"       hcl:"verbose,optional"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads a configuration file. Files ending in .hcl are decoded as
// HCL with the process environment exposed as "env"; anything else is YAML.
func NewSettings(path string) (*Settings, error) {
	var settings Settings

	if strings.EqualFold(filepath.Ext(path), hclExtension) {
		if err := hclsimple.DecodeFile(path, environmentContext(), &settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	settings.Password = resolveToken(settings.Password)
	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".tarfetch.yaml",
		".tarfetch.yml",
		"tarfetch.yaml",
		"tarfetch.yml",
		"tarfetch.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ApplyDefaults fills every optional field left empty.
func (s *Settings) ApplyDefaults() {
	if s.Provider == "" {
		s.Provider = DefaultProvider
	}
	if s.Extractor == "" {
		s.Extractor = DefaultExtractor
	}
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.APIURL == "" {
		s.APIURL = DefaultAPIURL
	}
	if s.ManifestHost == "" {
		s.ManifestHost = DefaultManifestHost
	}
}

// Validate checks that the four required inputs are present and the optional
// ones are well formed. Every failure wraps ErrUsage.
func (s *Settings) Validate() error {
	var missing []string
	if s.User == "" {
		missing = append(missing, "user")
	}
	if s.Password == "" {
		missing = append(missing, "password")
	}
	if s.Repo == "" {
		missing = append(missing, "repo")
	}
	if s.Destination == "" {
		missing = append(missing, "destination")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required parameters: %s", ErrUsage, strings.Join(missing, ", "))
	}

	if s.Retries < 0 {
		return fmt.Errorf("%w: retries must not be negative", ErrUsage)
	}
	if s.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative", ErrUsage)
	}
	if _, err := s.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// Coordinate returns the parsed repository coordinate.
func (s *Settings) Coordinate() RepoCoordinate {
	return ParseRepoCoordinate(s.Repo)
}

// Credentials returns the account credentials.
func (s *Settings) Credentials() Credentials {
	return Credentials{Username: s.User, Password: s.Password}
}

// TimeoutDuration parses Timeout; an empty value means no timeout.
func (s *Settings) TimeoutDuration() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid timeout %q: %w", ErrUsage, s.Timeout, err)
	}
	return timeout, nil
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func environmentContext() *hcl.EvalContext {
	variables := make(map[string]cty.Value)
	for _, pair := range os.Environ() {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			continue
		}
		variables[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(variables),
		},
	}
}
