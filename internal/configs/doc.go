// Package configs resolves the default target file and key name for
// Ironmonger commands.
//
// Values are layered, later layers winning:
//
//  1. Built-in defaults: .env and APP_SECRET
//  2. Project file .ironmonger.toml in the working directory
//  3. Environment: IRONMONGER_FILE, IRONMONGER_KEY_NAME
//  4. Command-line flags (applied in cmd/)
//
// The project file looks like:
//
//	[secret]
//	file = "config/.env.local"
//	name = "SESSION_KEY"
//
// Derivation parameters are not configurable: they determine the secret's
// value.
package configs
