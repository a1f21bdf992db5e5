package launcher

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/desktools/appdrawer/internal/domain"
)

// iconSet holds one texture per entry, in entry order
type iconSet struct {
	textures []Texture
}

// loadIcons loads every entry icon into win. On the first failure the
// textures loaded so far are released and nothing is returned.
func loadIcons(win Window, entries []domain.AppEntry, logger *zap.Logger) (*iconSet, error) {
	set := &iconSet{textures: make([]Texture, 0, len(entries))}
	for _, e := range entries {
		tex, err := win.LoadTexture(e.Icon)
		if err != nil {
			set.Release()
			logger.Error("Could not load app icon",
				zap.String("app", e.Path),
				zap.String("icon", e.Icon),
				zap.Error(err))
			return nil, fmt.Errorf("%w: %s: %w", ErrIconLoadFailed, e.Icon, err)
		}
		set.textures = append(set.textures, tex)
		logger.Info("Loaded texture", zap.String("icon", e.Icon))
	}
	return set, nil
}

// Release frees every texture; safe to call more than once
func (s *iconSet) Release() {
	for i, tex := range s.textures {
		tex.Release()
		s.textures[i] = nil
	}
	s.textures = nil
}
