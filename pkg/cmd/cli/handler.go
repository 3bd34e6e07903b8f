// Package cli holds the run functions of the one-shot maintenance commands.
package cli

import "github.com/avnit77/recipes/config"

// Handler groups the command handlers that share the loaded configuration
type Handler struct {
	Migration *MigrateHandler
}

// NewHandler creates the command handlers. c is read when a command runs,
// after cobra has loaded the config file and environment into it.
func NewHandler(c *config.Config) *Handler {
	return &Handler{
		Migration: newMigrateHandler(c),
	}
}
