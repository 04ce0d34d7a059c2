package minimap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrConfig marks a malformed alert config. Loading stops at the first bad
// line; no partial table is returned.
var ErrConfig = errors.New("minimap: invalid alert config")

// Size is a display size in screen units.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Alerts maps entity identifiers to display sizes.
type Alerts map[string]Size

// LoadAlerts reads an alert config file from disk.
func LoadAlerts(path string) (Alerts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("minimap: open alerts %s: %w", path, err)
	}
	defer f.Close()
	alerts, err := ParseAlerts(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return alerts, nil
}

// ParseAlerts reads `identifier;<unused>;width,height` records. Lines starting
// with # and blank lines are skipped.
func ParseAlerts(r io.Reader) (Alerts, error) {
	alerts := Alerts{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		if line == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		if strings.HasPrefix(raw, "#") || strings.TrimSpace(raw) == "" {
			continue
		}
		id, size, err := parseAlertLine(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		alerts[id] = size
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("minimap: read alerts: %w", err)
	}
	return alerts, nil
}

func parseAlertLine(raw string) (string, Size, error) {
	fields := strings.Split(raw, ";")
	if len(fields) < 3 {
		return "", Size{}, fmt.Errorf("%w: want 3 fields, got %d", ErrConfig, len(fields))
	}
	id := strings.TrimSpace(fields[0])
	if id == "" {
		return "", Size{}, fmt.Errorf("%w: empty identifier", ErrConfig)
	}
	dims := strings.Split(strings.TrimSpace(fields[2]), ",")
	if len(dims) != 2 {
		return "", Size{}, fmt.Errorf("%w: size %q is not width,height", ErrConfig, fields[2])
	}
	w, err := strconv.Atoi(strings.TrimSpace(dims[0]))
	if err != nil {
		return "", Size{}, fmt.Errorf("%w: width: %v", ErrConfig, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(dims[1]))
	if err != nil {
		return "", Size{}, fmt.Errorf("%w: height: %v", ErrConfig, err)
	}
	if w <= 0 || h <= 0 {
		return "", Size{}, fmt.Errorf("%w: size %dx%d must be positive", ErrConfig, w, h)
	}
	return id, Size{Width: w, Height: h}, nil
}

// Size looks up an exact identifier.
func (a Alerts) Size(id string) (Size, bool) {
	s, ok := a[id]
	return s, ok
}

// SizeFor returns the entry whose identifier is the longest prefix of path.
func (a Alerts) SizeFor(path string) (Size, bool) {
	best := -1
	var size Size
	for id, s := range a {
		if len(id) > best && strings.HasPrefix(path, id) {
			best = len(id)
			size = s
		}
	}
	return size, best >= 0
}
