package http

import (
	"html/template"

	"github.com/MKhiriev/go-web-scaffold/internal/config"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

type Handler struct {
	config *config.Config

	logger *logger.Logger

	templates *template.Template
}

func NewHandler(config *config.Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		config:    config,
		logger:    logger,
		templates: parseTemplates(),
	}
}
