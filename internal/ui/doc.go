// Package ui provides semantic text formatting for CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations are used instead:
//
//	ui.Code.Sprint("ironmonger create:secret") // `ironmonger create:secret`
//	ui.Key.Sprint("APP_SECRET")                // 'APP_SECRET'
//	ui.Muted.Sprint("default")                 // (default)
//
// Path, Secret, Success, Error, Warning and Info are left undecorated.
package ui
