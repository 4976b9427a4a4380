package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./scriptorium.db"

	// DefaultTranslationID is the translation served when none is configured
	DefaultTranslationID = "crampon"
)
