package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"biblia/internal/platform/config/raw"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file configuration schema.
// Every field maps onto the env var of the same meaning, see Values.
type FileConfig struct {
	Bible struct {
		BaseURL     string `yaml:"baseUrl" json:"baseUrl"`
		Translation string `yaml:"translation" json:"translation"`
		APIKey      string `yaml:"apiKey" json:"apiKey"`
		Header      string `yaml:"headerName" json:"headerName"`
		Timeout     string `yaml:"timeout" json:"timeout"`
		DefaultRef  string `yaml:"defaultRef" json:"defaultRef"`
	} `yaml:"bible" json:"bible"`

	API struct {
		Port     string   `yaml:"port" json:"port"`
		Origins  []string `yaml:"origins" json:"origins"`
		Swagger  *bool    `yaml:"swagger" json:"swagger"`
		Profiler *bool    `yaml:"profiler" json:"profiler"`
	} `yaml:"api" json:"api"`

	Prefs struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"prefs" json:"prefs"`
}

// LoadFile reads YAML or JSON into FileConfig
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Values flattens the file into fully-qualified env keys, skipping empty fields
func (fc FileConfig) Values() map[string]string {
	out := map[string]string{}
	put := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	putBool := func(k string, v *bool) {
		if v != nil {
			out[k] = strconv.FormatBool(*v)
		}
	}

	put("BIBLE_API_BASE_URL", fc.Bible.BaseURL)
	put("BIBLE_TRANSLATION", fc.Bible.Translation)
	put("BIBLE_API_KEY", fc.Bible.APIKey)
	put("BIBLE_API_HOST_HEADER", fc.Bible.Header)
	put("BIBLE_API_TIMEOUT", fc.Bible.Timeout)
	put("BIBLE_DEFAULT_REF", fc.Bible.DefaultRef)

	put("CORE_API_PORT", fc.API.Port)
	put("CORE_API_CORS_ORIGINS", strings.Join(fc.API.Origins, ","))
	putBool("CORE_API_SWAGGER", fc.API.Swagger)
	putBool("CORE_API_PROFILER", fc.API.Profiler)

	put("BIBLIA_PREFS_PATH", fc.Prefs.Path)
	return out
}

// Load returns the root Conf, layered over the file named by BIBLIA_CONFIG
// (or path when non-empty). A missing file is an error only when asked for explicitly.
func Load(path string) (Conf, error) {
	explicit := path != ""
	if !explicit {
		path = raw.New().Get("BIBLIA_CONFIG", "")
	}
	if path == "" {
		return New(), nil
	}
	fc, err := LoadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return New(), nil
		}
		return New(), err
	}
	return New().WithValues(fc.Values()), nil
}
