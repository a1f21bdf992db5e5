package launcher

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/desktools/appdrawer/internal/domain"
	"github.com/desktools/appdrawer/internal/geometry"
)

const windowTitle = "appdrawer"

// Launcher runs one session against a platform
type Launcher struct {
	platform Platform
	logger   *zap.Logger
}

// New creates a Launcher that uses platform for every OS and window call
func New(platform Platform, logger *zap.Logger) *Launcher {
	return &Launcher{platform: platform, logger: logger}
}

// Run launches the single configured app directly, or shows the icon row and
// launches whatever the user picks. Cancel, close, an out of range pick and a
// failed launch all return nil; only setup failures are returned.
func (l *Launcher) Run(s *domain.Session) error {
	logger := l.logger.With(zap.String("session", s.ID))

	switch s.Count() {
	case 0:
		logger.Info("No apps configured")
		return nil
	case 1:
		logger.Info("One app, direct launch")
		l.launch(logger, s.Entries[0])
		return nil
	}

	if s.IconSize == 0 || s.IconSize > domain.MaxIconSize {
		return fmt.Errorf("%w: icon size %d outside 1..%d", ErrWindowCreationFailed, s.IconSize, domain.MaxIconSize)
	}

	cursor, known := l.platform.CursorPosition()
	if !known {
		logger.Info("Can't find mouse, using default window placement")
	}
	area := l.platform.WorkArea()
	placement := geometry.Place(s.IconSize, s.Count(), cursor, known, area)

	win, err := l.platform.CreateWindow(WindowOptions{
		Title:       windowTitle,
		Placement:   placement,
		IconSize:    s.IconSize,
		Count:       s.Count(),
		Cursor:      cursor,
		CursorKnown: known,
		WorkArea:    area,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreationFailed, err)
	}
	logger.Debug("Window created",
		zap.Int("width", placement.Width),
		zap.Int("height", placement.Height),
		zap.Bool("positioned", placement.Positioned),
		zap.Int("x", placement.X),
		zap.Int("y", placement.Y))

	out, err := l.show(logger, win, s)
	if err != nil {
		return err
	}

	logger.Info("Called to run",
		zap.Int("index", out.Index),
		zap.Stringer("outcome", out.Kind))

	switch out.Kind {
	case OutcomeLaunch:
		entry, _ := s.Entry(out.Index)
		l.launch(logger, entry)
	case OutcomeInvalid:
		logger.Info("This option was invalid",
			zap.Int("index", out.Index),
			zap.Error(ErrInvalidSelection))
	case OutcomeCancel:
		logger.Info("Cancelled by key press")
	case OutcomeClosed:
		logger.Info("Close/switch display called, exiting")
	}
	return nil
}

// show owns the window for its whole life. Textures and the window are gone
// by the time it returns, whatever the path.
func (l *Launcher) show(logger *zap.Logger, win Window, s *domain.Session) (Outcome, error) {
	defer win.Destroy()

	icons, err := loadIcons(win, s.Entries, logger)
	if err != nil {
		return Outcome{}, err
	}
	defer icons.Release()

	win.Present(icons.textures, int(s.IconSize))

	d := NewDispatcher(int(s.IconSize), s.Count())
	for {
		ev := win.WaitEvent()
		if out, ok := d.Dispatch(ev); ok {
			logger.Debug("Event dispatched",
				zap.Stringer("event", ev.Kind),
				zap.Stringer("outcome", out.Kind))
			return out, nil
		}
	}
}

func (l *Launcher) launch(logger *zap.Logger, entry domain.AppEntry) {
	logger = logger.With(zap.String("app", entry.Path), zap.String("app_id", entry.ID))

	if err := l.platform.Launch(entry.Path); err != nil {
		logger.Error("Didn't start app correctly, please check args",
			zap.Error(fmt.Errorf("%w: %w", ErrLaunchFailed, err)))
		l.platform.ShowError("Error", err.Error())
		return
	}
	logger.Info("Started app successfully, ending itself")
}
