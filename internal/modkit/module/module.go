// Package module holds the cross-module port helpers used while composing the API
package module

import "biblia/internal/modkit"

// Module is the modkit contract, re-exported so wiring code imports one package
type Module = modkit.Module
