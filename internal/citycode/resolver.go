package citycode

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// suffixes are the administrative-division suffixes tried, in order, when
// an exact lookup misses: prefecture-level city, county, district.
var suffixes = []string{"市", "县", "区"}

type entry struct {
	CityName string `json:"city_name"`
	CityCode string `json:"city_code"`
}

// Resolver maps free-text city names to the numeric city codes the weather
// API expects. The dataset is loaded once, on first use; a failed load
// leaves the table empty and every lookup misses until restart.
type Resolver struct {
	path   string
	logger *zap.Logger

	loadOnce sync.Once
	codes    map[string]string
}

func NewResolver(datasetPath string, logger *zap.Logger) *Resolver {
	return &Resolver{
		path:   datasetPath,
		logger: logger,
	}
}

// Resolve returns the city code for a name, trying the exact name first
// and then the 市/县/区 suffixed forms. Matching is case-sensitive and
// exact. An empty result means not found.
func (r *Resolver) Resolve(cityName string) string {
	r.loadOnce.Do(r.load)

	if code, ok := r.codes[cityName]; ok {
		return code
	}
	for _, suffix := range suffixes {
		if code, ok := r.codes[cityName+suffix]; ok {
			return code
		}
	}
	return ""
}

// Size reports how many entries the table holds, loading it if needed.
func (r *Resolver) Size() int {
	r.loadOnce.Do(r.load)
	return len(r.codes)
}

func (r *Resolver) load() {
	codes, err := loadDataset(r.path)
	if err != nil {
		// Non-fatal: the resolver degrades to always-miss.
		r.logger.Error("Failed to load city code dataset",
			zap.String("path", r.path),
			zap.Error(err))
		return
	}

	r.codes = codes
	r.logger.Info("City code dataset loaded",
		zap.String("path", r.path),
		zap.Int("cities", len(codes)))
}

func loadDataset(path string) (map[string]string, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(rawData, &entries); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	codes := make(map[string]string, len(entries))
	for _, e := range entries {
		codes[e.CityName] = e.CityCode
	}
	return codes, nil
}
