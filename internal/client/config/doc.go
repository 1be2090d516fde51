// Package config loads runtime configuration for the marketadmin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables with the MARKETADMIN_ prefix.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the marketplace REST API
//	-t int      per-request timeout (seconds)
//	-d string   path of the local SQLite file holding the session token
//	-p int      default list page size
//	-l string   log level (debug, info, warn, error)
//	-s          apply only the newest response per operation (strict ordering)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "request_timeout": "15s",
//	  "storage_path": "marketadmin.db",
//	  "page_size": 5,
//	  "strict_ordering": false,
//	  "log_level": "info"
//	}
//
// # Environment
//
//	MARKETADMIN_API_BASE_URL, MARKETADMIN_REQUEST_TIMEOUT, MARKETADMIN_STORAGE_PATH,
//	MARKETADMIN_PAGE_SIZE, MARKETADMIN_STRICT_ORDERING, MARKETADMIN_LOG_LEVEL
package config
