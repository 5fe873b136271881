package engine

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config — параметры запуска инстанса.
type Config struct {
	Seed       int64
	Generation uint16 // Поколение идентификаторов (номер инстанса/волны)

	// MaxFrameDT и TileSize: 0 — взять значение из правил реестра.
	MaxFrameDT float64
	TileSize   float64

	RecordReplay bool
}

func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		Generation:   1,
		RecordReplay: true,
	}
}

// ConfigFromEnv возвращает NewConfig с переопределениями из окружения:
// CD_SEED, CD_MAX_DT, CD_TILE_SIZE.
func ConfigFromEnv() (Config, error) {
	cfg := NewConfig()

	if v, ok := os.LookupEnv("CD_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("CD_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := os.LookupEnv("CD_MAX_DT"); ok {
		dt, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("CD_MAX_DT: %w", err)
		}
		cfg.MaxFrameDT = dt
	}
	if v, ok := os.LookupEnv("CD_TILE_SIZE"); ok {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("CD_TILE_SIZE: %w", err)
		}
		cfg.TileSize = size
	}

	return cfg, cfg.Validate()
}

// Validate отвергает отрицательные и нечисловые значения.
func (c Config) Validate() error {
	if !validOptional(c.MaxFrameDT) {
		return fmt.Errorf("%w: max frame dt %v", ErrInvalidConfig, c.MaxFrameDT)
	}
	if !validOptional(c.TileSize) {
		return fmt.Errorf("%w: tile size %v", ErrInvalidConfig, c.TileSize)
	}
	return nil
}

func validOptional(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
