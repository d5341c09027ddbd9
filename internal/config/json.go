package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/svarma-dev/certfolio/internal/flagx"
	"github.com/svarma-dev/certfolio/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the notice TTL either as a string like
// "3s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	DatabaseDSN   string         `json:"database_dsn"`
	OwnerID       string         `json:"owner_id"`
	OwnerPassword string         `json:"owner_password"`
	NoticeTTL     timex.Duration `json:"notice_ttl"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. With no such flag the function returns immediately.
// Only fields present in the file override the defaults. Panics on read or
// unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.OwnerID != "" {
		cfg.OwnerID = jc.OwnerID
	}
	if jc.OwnerPassword != "" {
		cfg.OwnerPassword = jc.OwnerPassword
	}
	if jc.NoticeTTL.Duration != 0 {
		cfg.NoticeTTL = time.Duration(jc.NoticeTTL.Duration)
	}
}
