package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"

	"github.com/desktools/appdrawer/internal/domain"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "verysimpleappdrawer.json"

var (
	// ErrConfigNotFound means the config file could not be opened
	ErrConfigNotFound = errors.New("config not found")
	// ErrConfigMalformed means the document is not structured data or lacks icon_size/apps
	ErrConfigMalformed = errors.New("config malformed")
	// ErrConfigEntryInvalid means an app entry has no app_path or app_icon
	ErrConfigEntryInvalid = errors.New("config entry invalid")
	// ErrNoApps means the apps list is empty
	ErrNoApps = errors.New("no apps configured")
)

// Config is the decoded document. Keys are matched exactly, see decodeDocument.
type Config struct {
	IconSize uint32
	Apps     []App
}

// App is one entry of the apps list
type App struct {
	AppPath string
	AppIcon string
}

// Load reads the config at path and returns the validated session.
// Nothing is returned unless every entry is valid.
func Load(path string) (*domain.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}

	return Parse(data)
}

// Parse validates a config document and converts it into a session
func Parse(data []byte) (*domain.Session, error) {
	jb, err := normalizeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}

	if err := validateDocument(jb); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}

	cfg, err := decodeDocument(jb)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}

	return cfg.Session()
}

// Session checks every entry and builds the run session
func (c *Config) Session() (*domain.Session, error) {
	if c.IconSize == 0 || c.IconSize > domain.MaxIconSize {
		return nil, fmt.Errorf("%w: icon_size %d outside 1..%d", ErrConfigMalformed, c.IconSize, domain.MaxIconSize)
	}

	entries := make([]domain.AppEntry, 0, len(c.Apps))
	for i, a := range c.Apps {
		if a.AppPath == "" || a.AppIcon == "" {
			return nil, fmt.Errorf("%w: apps[%d] needs non-empty \"app_path\" and \"app_icon\"", ErrConfigEntryInvalid, i)
		}
		entries = append(entries, domain.AppEntry{
			ID:   uuid.New().String(),
			Path: a.AppPath,
			Icon: a.AppIcon,
		})
	}

	if len(entries) == 0 {
		return nil, ErrNoApps
	}

	return &domain.Session{
		ID:       uuid.New().String(),
		IconSize: c.IconSize,
		Entries:  entries,
	}, nil
}
