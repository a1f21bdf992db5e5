package domain

// MaxIconSize is the largest accepted icon edge in pixels
const MaxIconSize = 1 << 16

// AppEntry represents one launchable target with its icon
type AppEntry struct {
	ID   string `json:"id"`
	Path string `json:"app_path"` // command passed to the OS shell
	Icon string `json:"app_icon"` // image file drawn in the icon row
}

// Session holds the validated configuration for a single run
type Session struct {
	ID       string     `json:"id"`
	IconSize uint32     `json:"icon_size"`
	Entries  []AppEntry `json:"apps"`
}

// Count returns the number of configured apps
func (s *Session) Count() int {
	return len(s.Entries)
}

// Entry returns the entry at index i, or false when i is out of range
func (s *Session) Entry(i int) (AppEntry, bool) {
	if i < 0 || i >= len(s.Entries) {
		return AppEntry{}, false
	}
	return s.Entries[i], true
}
