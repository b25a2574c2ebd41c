// Package storage provides durable string-set backends for the favorites
// store: Fyne preferences for the GUI and SQLite for the command line.
package storage
