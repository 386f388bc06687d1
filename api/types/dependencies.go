package types

import (
	"github.com/killallgit/vidcode-api/internal/database"
	"github.com/killallgit/vidcode-api/internal/metrics"
	"github.com/killallgit/vidcode-api/internal/services/coding"
	"github.com/killallgit/vidcode-api/internal/services/export"
	"github.com/killallgit/vidcode-api/internal/services/projects"
	"github.com/killallgit/vidcode-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	Config         *config.Config
	Metrics        *metrics.Metrics
	ProjectService projects.Service
	CodingService  coding.Service
	ExportService  export.Service
}
