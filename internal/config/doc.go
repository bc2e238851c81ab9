// Package config loads and validates application settings.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, a .env file in the working directory, and TASKBOOK_-prefixed
// environment variables (TASKBOOK_SERVER_PORT, TASKBOOK_DATABASE_URL, ...).
package config
