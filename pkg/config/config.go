// Package config loads sixdegrees settings from a TOML file.
//
// A config file names the movie data files and the starting center:
//
//	actors  = "data/actors.txt"
//	movies  = "data/movies.txt"
//	credits = "data/movie-actors.txt"
//	graph   = "data/graph.json"   # optional, used instead of the tables
//	center  = "Kevin Bacon"
//	workers = 8
//
// Relative paths are resolved against the directory holding the config
// file. Every key is optional; missing keys keep their defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sixdegrees/pkg/costar"
	"github.com/matzehuels/sixdegrees/pkg/errors"
	sdio "github.com/matzehuels/sixdegrees/pkg/io"
)

const (
	// AppName names the per-user config directory.
	AppName = "sixdegrees"

	// FileName is the config file looked up in the config directory.
	FileName = "config.toml"
)

// Default data file names, relative to the working directory.
const (
	DefaultActors  = "actors.txt"
	DefaultMovies  = "movies.txt"
	DefaultCredits = "movie-actors.txt"
)

// Config holds the settings shared by all commands.
type Config struct {
	Actors  string `toml:"actors"`
	Movies  string `toml:"movies"`
	Credits string `toml:"credits"`
	Graph   string `toml:"graph"`
	Center  string `toml:"center"`
	Workers int    `toml:"workers"` // 0 picks the game default

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Actors:  DefaultActors,
		Movies:  DefaultMovies,
		Credits: DefaultCredits,
		Center:  costar.DefaultCenter,
	}
}

// Dir returns the per-user config directory using the XDG standard
// (~/.config/sixdegrees/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Load reads the config file at path.
//
// With an empty path the file is looked up in [Dir], and a missing file
// yields [Default]. An explicit path that does not exist is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := Dir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s does not exist", path)
		}
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Source = path
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes TOML settings on top of [Default].
// Unknown keys are rejected so typos do not go unnoticed.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Validate checks that the settings can be used to start a game.
func (c Config) Validate() error {
	if c.Graph != "" {
		if err := errors.ValidateDataPath(c.Graph); err != nil {
			return err
		}
	} else {
		for _, p := range []string{c.Actors, c.Movies, c.Credits} {
			if err := errors.ValidateDataPath(p); err != nil {
				return err
			}
		}
	}
	if err := errors.ValidateActorName(c.Center); err != nil {
		return err
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must not be negative (got %d)", c.Workers)
	}
	return nil
}

// Sources returns the data files to load the tables from.
func (c Config) Sources() sdio.Sources {
	return sdio.Sources{Actors: c.Actors, Movies: c.Movies, Credits: c.Credits}
}

// resolve makes relative data paths relative to base.
func (c *Config) resolve(base string) {
	for _, p := range []*string{&c.Actors, &c.Movies, &c.Credits, &c.Graph} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}
