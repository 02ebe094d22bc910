package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/1adybug/sort-imports/pkg/errors"
	"github.com/1adybug/sort-imports/pkg/formatter"
	"github.com/1adybug/sort-imports/pkg/sorter"
	"github.com/1adybug/sort-imports/pkg/utils"
)

// SettingsFileName is the side-loaded settings file discovered by walking
// up from the target file's directory
const SettingsFileName = ".sortimports.toml"

// Settings is the serializable subset of configuration carried by a
// side-loaded settings file. Pointer fields distinguish "unset" from an
// explicit zero so layered sources merge cleanly.
type Settings struct {
	Separator           *string  `toml:"separator"`
	SortSideEffects     *bool    `toml:"sort_side_effects"`
	RemoveUnusedImports *bool    `toml:"remove_unused_imports"`
	AliasPrefixes       []string `toml:"alias_prefixes"`
	GroupOrder          []string `toml:"group_order"`
	BuiltinGroup        *bool    `toml:"builtin_group"`
}

type settingsCacheEntry struct {
	settings *Settings
	err      error
}

// Settings files are assumed static for the process lifetime; the cache is
// never invalidated.
var (
	settingsCacheMu sync.Mutex
	settingsCache   = make(map[string]*settingsCacheEntry)
)

// LoadSettings decodes the settings file at path, memoized process-wide by
// resolved path
func LoadSettings(path string) (*Settings, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	settingsCacheMu.Lock()
	defer settingsCacheMu.Unlock()

	if entry, ok := settingsCache[abs]; ok {
		return entry.settings, entry.err
	}

	settings := &Settings{}
	entry := &settingsCacheEntry{}
	if _, err := toml.DecodeFile(abs, settings); err != nil {
		entry.err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	} else {
		entry.settings = settings
	}
	settingsCache[abs] = entry
	return entry.settings, entry.err
}

// Options carries one invocation's configuration inputs before merging.
// Precedence, highest first: explicit fields, the settings file (ConfigPath
// or one discovered upward from TargetPath), Ambient, built-in defaults.
type Options struct {
	Separator           *string
	SortSideEffects     *bool
	RemoveUnusedImports *bool

	ConfigPath string // explicit settings file; disables discovery
	TargetPath string // file being transformed; anchors discovery
	Ambient    *Settings
}

// Resolve merges the configuration layers and builds the strategy bundle
func Resolve(opts Options) (Config, error) {
	merged := &Settings{}
	overlay(merged, opts.Ambient)

	switch {
	case opts.ConfigPath != "":
		settings, err := LoadSettings(opts.ConfigPath)
		if err != nil {
			return Config{}, err
		}
		overlay(merged, settings)
	case opts.TargetPath != "":
		if path, ok := utils.FindUpward(filepath.Dir(opts.TargetPath), SettingsFileName); ok {
			settings, err := LoadSettings(path)
			if err != nil {
				return Config{}, err
			}
			overlay(merged, settings)
		}
	}

	overlay(merged, &Settings{
		Separator:           opts.Separator,
		SortSideEffects:     opts.SortSideEffects,
		RemoveUnusedImports: opts.RemoveUnusedImports,
	})

	return fromSettings(merged), nil
}

func overlay(dst, src *Settings) {
	if src == nil {
		return
	}
	if src.Separator != nil {
		dst.Separator = src.Separator
	}
	if src.SortSideEffects != nil {
		dst.SortSideEffects = src.SortSideEffects
	}
	if src.RemoveUnusedImports != nil {
		dst.RemoveUnusedImports = src.RemoveUnusedImports
	}
	if len(src.AliasPrefixes) > 0 {
		dst.AliasPrefixes = src.AliasPrefixes
	}
	if len(src.GroupOrder) > 0 {
		dst.GroupOrder = src.GroupOrder
	}
	if src.BuiltinGroup != nil {
		dst.BuiltinGroup = src.BuiltinGroup
	}
}

func fromSettings(settings *Settings) Config {
	cfg := Config{}

	prefixes := sorter.DefaultAliasPrefixes
	if len(settings.AliasPrefixes) > 0 {
		prefixes = settings.AliasPrefixes
	}
	switch {
	case settings.BuiltinGroup != nil && *settings.BuiltinGroup:
		cfg.Classify = sorter.NewBuiltinClassifier(prefixes)
	case len(settings.AliasPrefixes) > 0:
		cfg.Classify = sorter.NewPathClassifier(prefixes)
	}

	if len(settings.GroupOrder) > 0 {
		cfg.SortGroup = GroupOrderComparator(settings.GroupOrder)
	}
	if settings.Separator != nil && *settings.Separator != "" {
		cfg.Separator = formatter.LiteralSeparator(*settings.Separator)
	}
	if settings.SortSideEffects != nil {
		cfg.SortSideEffect = *settings.SortSideEffects
	}
	if settings.RemoveUnusedImports != nil {
		cfg.RemoveUnusedImports = *settings.RemoveUnusedImports
	}
	return cfg
}
