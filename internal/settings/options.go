package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/peternagy/pdfbinder/internal/core"
	"github.com/peternagy/pdfbinder/internal/debug"
	"github.com/peternagy/pdfbinder/internal/storage"
	"github.com/peternagy/pdfbinder/internal/types"
)

// Option sections and keys.
const (
	SectionAppearance            = "Appearance"
	KeyApplyWindowsDefaultAccent = "ApplyWindowsDefaultAccent"
	KeyAccentColor               = "AccentColor"
)

// DefaultAccentColor is used whenever no usable accent is available.
var DefaultAccentColor = types.RGB(0x1b, 0xa1, 0xe2)

// OptionGetter reads a raw option value by section and key.
type OptionGetter interface {
	GetOption(section, key string) (interface{}, error)
}

// Manager owns the theme catalog and the options file.
type Manager struct {
	store *storage.Service

	mu     sync.RWMutex
	themes []types.ThemeInfo

	optMu   sync.Mutex
	options *viper.Viper
	readErr error
}

// NewManager loads the theme catalog and options from store. A settings file
// that cannot be parsed is left on disk and the options start from defaults;
// ReadError reports the parse failure.
func NewManager(store *storage.Service) (*Manager, error) {
	if err := store.EnsureDirs(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetFs(store.Fs())
	v.SetConfigFile(store.SettingsFile())
	v.SetConfigType("json")
	v.SetDefault(optionKey(SectionAppearance, KeyApplyWindowsDefaultAccent), true)
	v.SetDefault(optionKey(SectionAppearance, KeyAccentColor), DefaultAccentColor.Hex())

	m := &Manager{store: store, options: v}
	if store.Exists(store.SettingsFile()) {
		if err := v.ReadInConfig(); err != nil {
			m.readErr = fmt.Errorf("failed to read settings: %w", err)
			debug.LogSettings("Settings unreadable, using defaults", map[string]interface{}{
				"file":  store.SettingsFile(),
				"error": err.Error(),
			})
		}
	}
	m.ReloadThemes()
	return m, nil
}

// ReadError returns the error from parsing the settings file, or nil.
func (m *Manager) ReadError() error {
	return m.readErr
}

func optionKey(section, key string) string {
	return strings.ToLower(section) + "." + strings.ToLower(key)
}

// GetOption returns the raw value stored for section.key.
func (m *Manager) GetOption(section, key string) (interface{}, error) {
	m.optMu.Lock()
	defer m.optMu.Unlock()

	k := optionKey(section, key)
	if !m.options.IsSet(k) {
		return nil, &core.OptionNotFoundError{Section: section, Key: key}
	}
	return m.options.Get(k), nil
}

// SetOption stores value under section.key and writes the options file.
func (m *Manager) SetOption(section, key string, value interface{}) error {
	if c, ok := value.(types.Color); ok {
		value = c.Hex()
	}

	m.optMu.Lock()
	defer m.optMu.Unlock()

	m.options.Set(optionKey(section, key), value)
	if err := m.options.WriteConfigAs(m.store.SettingsFile()); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	debug.LogSettings("Option saved", map[string]interface{}{
		"section": section,
		"key":     key,
	})
	return nil
}

// AccentOptions returns the Appearance accent options.
func (m *Manager) AccentOptions() (types.AccentOptions, error) {
	useSystem, err := GetOptionValue[bool](m, SectionAppearance, KeyApplyWindowsDefaultAccent)
	if err != nil {
		return types.AccentOptions{}, err
	}
	accent, err := GetOptionValue[types.Color](m, SectionAppearance, KeyAccentColor)
	if err != nil {
		return types.AccentOptions{}, err
	}
	return types.AccentOptions{ApplyWindowsDefaultAccent: useSystem, AccentColor: accent}, nil
}

// SetAccentOptions persists the Appearance accent options.
func (m *Manager) SetAccentOptions(opts types.AccentOptions) error {
	if err := m.SetOption(SectionAppearance, KeyApplyWindowsDefaultAccent, opts.ApplyWindowsDefaultAccent); err != nil {
		return err
	}
	return m.SetOption(SectionAppearance, KeyAccentColor, opts.AccentColor)
}

// GetOptionValue reads section.key from g and converts it to T.
// bool, string, int, float64 and types.Color are converted; any other T
// must match the stored value's dynamic type.
func GetOptionValue[T any](g OptionGetter, section, key string) (T, error) {
	var zero T

	raw, err := g.GetOption(section, key)
	if err != nil {
		return zero, err
	}

	var out interface{}
	switch any(zero).(type) {
	case bool:
		out, err = cast.ToBoolE(raw)
	case string:
		out, err = cast.ToStringE(raw)
	case int:
		out, err = cast.ToIntE(raw)
	case float64:
		out, err = cast.ToFloat64E(raw)
	case types.Color:
		out, err = toColor(raw)
	default:
		v, ok := raw.(T)
		if !ok {
			return zero, fmt.Errorf("option %s.%s: unexpected type %T", section, key, raw)
		}
		return v, nil
	}
	if err != nil {
		return zero, fmt.Errorf("option %s.%s: %w", section, key, err)
	}
	return out.(T), nil
}

func toColor(raw interface{}) (types.Color, error) {
	switch v := raw.(type) {
	case types.Color:
		return v, nil
	case string:
		return types.ParseColor(v)
	default:
		return types.Color{}, fmt.Errorf("cannot convert %T to color", raw)
	}
}
