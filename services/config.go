package services

import (
	"github.com/alphabatem/common/context"

	"github.com/shadowbox-gym/shadowbox_api/config"
)

// ConfigService exposes the parsed environment to the other services. It must be
// registered first so later Configure calls can read it.
type ConfigService struct {
	context.DefaultService
	cfg *config.Config
}

const CONFIG_SVC = "config_svc"

func NewConfigService(cfg *config.Config) *ConfigService {
	return &ConfigService{cfg: cfg}
}

func (svc ConfigService) Id() string {
	return CONFIG_SVC
}

func (svc *ConfigService) Configure(ctx *context.Context) error {
	if svc.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		svc.cfg = cfg
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ConfigService) Start() error {
	return nil
}

func (svc *ConfigService) Config() *config.Config {
	return svc.cfg
}
