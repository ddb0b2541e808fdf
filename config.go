package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	TextPath      string
	Alphabet      string
	AlphaScale    int
	DrawAlpha     bool
	Width         int
	Height        int
	FromClipboard bool
}

func defaultConfig() *Config {
	return &Config{
		TextPath:   "faust_kurz.txt",
		Alphabet:   DefaultAlphabet,
		AlphaScale: defaultScale,
		DrawAlpha:  true,
		Width:      defaultWidth,
		Height:     defaultHeight,
	}
}

// loadConfig reads path, or ~/.lettersortrc when path is empty. A missing
// rc file in the home directory is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	homeDir, _ := os.UserHomeDir()
	explicit := path != ""
	if !explicit {
		if homeDir == "" {
			return config, nil
		}
		path = filepath.Join(homeDir, ".lettersortrc")
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := parseConfig(file, config, homeDir); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func parseConfig(r io.Reader, config *Config, homeDir string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "text", "textpath", "text_path":
			config.TextPath = expandPath(value, homeDir)
		case "alphabet":
			// Trailing spaces are significant here; only the leading
			// whitespace after '=' is dropped.
			config.Alphabet = strings.TrimLeft(strings.SplitN(raw, "=", 2)[1], " \t")
		case "alphascale", "alpha_scale":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("line %d: invalid alphascale %q", lineNo, value)
			}
			config.AlphaScale = n
		case "drawalpha", "draw_alpha":
			config.DrawAlpha = strings.ToLower(value) == "true"
		case "width", "height":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("line %d: invalid %s %q", lineNo, key, value)
			}
			if strings.ToLower(key) == "width" {
				config.Width = n
			} else {
				config.Height = n
			}
		}
	}
	return scanner.Err()
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		logger().Warn("cannot create save directory", "dir", c.SaveDirectory, "err", err)
	}
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) Geometry() Geometry {
	return Geometry{
		Width:      float64(c.Width),
		Height:     float64(c.Height),
		AlphaScale: c.AlphaScale,
	}
}
