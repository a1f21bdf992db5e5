package launcher

import "errors"

var (
	// ErrWindowCreationFailed means the icon row window could not be opened
	ErrWindowCreationFailed = errors.New("window creation failed")
	// ErrIconLoadFailed means an icon file could not be decoded into a texture
	ErrIconLoadFailed = errors.New("icon load failed")
	// ErrLaunchFailed means the picked app could not be started
	ErrLaunchFailed = errors.New("launch failed")
	// ErrInvalidSelection means the pick fell outside the configured apps
	ErrInvalidSelection = errors.New("invalid selection")
)
