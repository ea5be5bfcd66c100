// Package config loads runtime configuration for the paybook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/-config or $PAYBOOK_CONFIG.
//  3. Environment: a .env file in the working directory (if present) and
//     PAYBOOK_* variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   path of the local database file
//	-o string   directory for exported reports
//	-l string   log level (debug, info, warn, error)
//	-s string   session lifetime, e.g. "12h"
//
// # JSON schema
//
//	{
//	  "database_path": "paybook.db",
//	  "export_dir": "exports",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "session_secret": "",
//	  "session_ttl": "12h"
//	}
//
// Environment variables mirror the JSON keys with a PAYBOOK_ prefix, e.g.
// PAYBOOK_DB_PATH, PAYBOOK_SESSION_TTL.
package config
