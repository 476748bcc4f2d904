// Package domain contains all domain modules
package domain

import (
	"go.uber.org/fx"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog"
)

// Module aggregates all domain modules for fx dependency injection
var Module = fx.Module("domain",
	catalog.Module,
)
