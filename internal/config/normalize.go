package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLibrary()
	c.normalizeClassify()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.IncomingDir = strings.TrimSpace(c.Paths.IncomingDir); c.Paths.IncomingDir != "" {
		if c.Paths.IncomingDir, err = expandPath(c.Paths.IncomingDir); err != nil {
			return fmt.Errorf("paths.incoming_dir: %w", err)
		}
	}
	if c.Paths.LibraryDir = strings.TrimSpace(c.Paths.LibraryDir); c.Paths.LibraryDir != "" {
		if c.Paths.LibraryDir, err = expandPath(c.Paths.LibraryDir); err != nil {
			return fmt.Errorf("paths.library_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLibrary() {
	c.Library.MoviesDir = strings.TrimSpace(c.Library.MoviesDir)
	c.Library.ShowsDir = strings.TrimSpace(c.Library.ShowsDir)
}

func (c *Config) normalizeClassify() {
	c.Classify.VideoExtensions = normalizeExtensions(c.Classify.VideoExtensions)
	c.Classify.GarbageExtensions = normalizeExtensions(c.Classify.GarbageExtensions)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		out = append(out, ext)
	}
	return out
}
