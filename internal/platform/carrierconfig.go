package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dense-identity/domainselection/internal/telephony"
	toml "github.com/pelletier/go-toml/v2"
)

const defaultConfigFile = "default.toml"

// CarrierConfigLoader reads per-subscription carrier configuration from
// <dir>/<subID>.toml, falling back to <dir>/default.toml. Keys missing from
// a file keep their platform default.
type CarrierConfigLoader struct {
	dir    string
	logger *log.Logger
}

func NewCarrierConfigLoader(dir string, logger *log.Logger) *CarrierConfigLoader {
	if logger == nil {
		logger = log.Default()
	}
	return &CarrierConfigLoader{dir: dir, logger: logger}
}

// Load never fails for a missing or corrupt file: it logs and returns defaults.
func (l *CarrierConfigLoader) Load(subID int) (*telephony.CarrierConfig, error) {
	cfg := telephony.DefaultCarrierConfig()
	if l == nil || l.dir == "" {
		return cfg, nil
	}

	candidates := []string{defaultConfigFile}
	if telephony.IsValidSubID(subID) {
		candidates = []string{strconv.Itoa(subID) + ".toml", defaultConfigFile}
	}
	for _, name := range candidates {
		path := filepath.Join(l.dir, name)
		loaded, err := decodeCarrierConfig(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			l.logger.Printf("[CarrierConfigLoader] %v, using defaults", err)
			return telephony.DefaultCarrierConfig(), nil
		}
		return loaded, nil
	}
	return cfg, nil
}

func decodeCarrierConfig(path string) (*telephony.CarrierConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := telephony.DefaultCarrierConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding carrier config %s: %w", path, err)
	}
	return cfg, nil
}
