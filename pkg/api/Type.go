package api

import (
	"github.com/wildme/dockerctl/pkg/configuration"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"go.uber.org/zap"
)

type Api struct {
	Orchestrator *orchestrator.Orchestrator
	Config       *configuration.Configuration
	logger       *zap.Logger
}

type ServiceStatus struct {
	Name   string
	Clone  *uint64
	Status string
	Found  bool
	State  string
}

type ServiceURLs struct {
	Name    string
	Clone   *uint64
	Running bool
	URLs    []string
}
