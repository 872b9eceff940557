package config

import "time"

// Base application details
const AppName = "multi_tab_text_editor"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file
const SettingsFileName = AppName + "_config.json"
const DefaultLogFileName = AppName + ".log"

// SourceURL is opened from the About dialog.
const SourceURL = "https://github.com/bethropolis/multitab"

// UI Layout
const MenuBarHeight = 1
const TabBarHeight = 1
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// WatchDebounce coalesces bursts of change notifications for one file.
const WatchDebounce = 150 * time.Millisecond

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultScrollOff = 3
const SystemClipboard = true
const WatchFiles = true
const DefaultExtension = "go"

// Version is shown in the About dialog.
const Version = "0.1.0"
