package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateClassify(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLibrary() error {
	if err := validateBucket("library.movies_dir", c.Library.MoviesDir); err != nil {
		return err
	}
	return validateBucket("library.shows_dir", c.Library.ShowsDir)
}

func validateBucket(key, value string) error {
	if value == "" {
		return fmt.Errorf("%s must be set", key)
	}
	if strings.ContainsAny(value, `/\`) || value == "." || value == ".." {
		return fmt.Errorf("%s must be a plain directory name, got %q", key, value)
	}
	return nil
}

func (c *Config) validateClassify() error {
	if len(c.Classify.VideoExtensions) == 0 {
		return errors.New("classify.video_extensions must not be empty")
	}
	if len(c.Classify.GarbageExtensions) == 0 {
		return errors.New("classify.garbage_extensions must not be empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
