package config

import "time"

// Base application details
const AppName = "loom"
const ConfigDirName = "loom"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "loom.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Defaults
const DefaultLogLevel = "info"
const DefaultPrecedence = "local-first"
const SystemClipboard = true
