package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/phobologic/codegauge/internal/model"
	"github.com/phobologic/codegauge/internal/report"
	"github.com/phobologic/codegauge/internal/rules"
)

// cacheEntry is the on-disk cache: the unfiltered report in json form plus
// the thresholds its issues were computed with.
type cacheEntry struct {
	Thresholds rules.Thresholds `json:"thresholds"`
	Report     json.RawMessage  `json:"report"`
}

// loadCache returns the cached report when the cache is newer than every
// target, was built with the same thresholds, covers exactly the target files
// and still matches the report schema.
func loadCache(cachePath string, th rules.Thresholds, targets []target) (*model.Report, bool) {
	if !cacheIsFresh(cachePath, targets) {
		return nil, false
	}
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Thresholds != th {
		return nil, false
	}
	if err := report.ValidateJSON(entry.Report); err != nil {
		return nil, false
	}

	var rep model.Report
	if err := json.Unmarshal(entry.Report, &rep); err != nil {
		return nil, false
	}

	if len(rep.Files) != len(targets) {
		return nil, false
	}
	cached := make(map[string]struct{}, len(rep.Files))
	for i := range rep.Files {
		cached[rep.Files[i].Path] = struct{}{}
	}
	for _, t := range targets {
		if _, ok := cached[t.display]; !ok {
			return nil, false
		}
	}
	return &rep, true
}

func writeCache(cachePath string, th rules.Thresholds, rep *model.Report) error {
	var buf bytes.Buffer
	if err := report.Render(&buf, report.FormatJSON, rep, report.Options{}); err != nil {
		return err
	}
	data, err := json.Marshal(cacheEntry{Thresholds: th, Report: buf.Bytes()})
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	return os.WriteFile(cachePath, data, 0o644)
}

func cacheIsFresh(cachePath string, targets []target) bool {
	cacheInfo, err := os.Stat(cachePath)
	if err != nil {
		return false
	}
	cacheMtime := cacheInfo.ModTime()

	for _, t := range targets {
		fi, err := os.Stat(t.abs)
		if err != nil {
			return false
		}
		if !fi.ModTime().Before(cacheMtime) {
			return false
		}
	}
	return true
}
