package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	Theme        string `json:"theme"`          // light/dark
	PieceAssets  string `json:"piece_assets"`   // dir with piece sprites, empty for built-in
	FontAssets   string `json:"font_assets"`    // dir with ttf fonts, empty for built-in
	LogLevel     string `json:"log_level"`      // debug/info/warn/error
	WindowH      int    `json:"window_h"`       //
	WindowW      int    `json:"window_w"`       //
	EraseOnClick bool   `json:"erase_on_click"` // left click clears drawn shapes
	Debug        bool   `json:"debug"`          // true/false
}

func defaultConfig() Config {
	return Config{
		Theme:        "light",
		PieceAssets:  "",
		FontAssets:   "",
		LogLevel:     "info",
		WindowH:      700,
		WindowW:      1000,
		EraseOnClick: true,
		Debug:        false,
	}
}

func NewGUIConfig() (*Config, error) {
	file := "chessground.json"

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %s", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save() error {
	file := "chessground.json"
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	err = os.WriteFile(file, jsonData, 0644)
	if err != nil {
		return err
	}
	return nil
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
	if c.WindowH < 400 || c.WindowW < 500 {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
