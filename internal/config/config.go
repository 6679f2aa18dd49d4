package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

var globalConfig *Config

type Assets struct {
	Images   map[string]string        `json:"images"`
	Fonts    map[string]FontConfig    `json:"fonts"`
	Tilesets map[string]TilesetConfig `json:"tilesets"`
}

type FontConfig struct {
	Path string  `json:"path"`
	Size float64 `json:"size"`
}

type TilesetConfig struct {
	Path      string            `json:"path"`
	TileSize  int               `json:"tile_size"`
	Columns   int               `json:"columns"`
	Rows      int               `json:"rows"`
	Autotiles [][2]int          `json:"autotiles"`
	Fixtures  map[string][2]int `json:"fixtures"`
}

// ECS holds the simple tuning knobs loaded with the rest of the config:
// a fixed-update rate and a per-frame time budget. The demo host in cmd
// only logs FixedUpdateHz; neither value is passed to the World or to a
// timing sink. The World's behavior is driven by registered systems,
// not configuration, so this stays deliberately small.
type ECS struct {
	FixedUpdateHz int   `json:"fixed_update_hz"`
	FrameBudgetMs int64 `json:"frame_budget_ms"`
}

type Config struct {
	Assets Assets `json:"assets"`
	ECS    ECS    `json:"ecs"`
}

func Load() *Config {
	if globalConfig != nil {
		return globalConfig
	}

	assetsData, err := os.ReadFile("assets.json")
	if err != nil {
		slog.Info("error reading assets.json", "err", err)
		panic(err)
	}

	config := Config{
		ECS: ECS{FixedUpdateHz: 60, FrameBudgetMs: 16},
	}
	err = json.Unmarshal(assetsData, &config)
	if err != nil {
		slog.Info("error reading assets.json", "err", err)
		panic(err)
	}

	globalConfig = &config

	return globalConfig
}
