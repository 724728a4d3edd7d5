package services

import (
	"context"

	appContext "github.com/alphabatem/common/context"

	"github.com/shadowbox-gym/shadowbox_api/dto"
	"github.com/shadowbox-gym/shadowbox_api/model"
	"github.com/shadowbox-gym/shadowbox_api/services/progression"
	"github.com/shadowbox-gym/shadowbox_api/services/training"
)

// ContentService owns the punch catalog and serves training content.
type ContentService struct {
	appContext.DefaultService
	catalog  *progression.Catalog
	mediaSvc *MediaService
}

const CONTENT_SVC = "content_svc"

func NewContentService(catalog *progression.Catalog, mediaSvc *MediaService) *ContentService {
	return &ContentService{catalog: catalog, mediaSvc: mediaSvc}
}

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Configure(ctx *appContext.Context) error {
	if svc.catalog == nil {
		svc.catalog = progression.DefaultCatalog()
	}
	svc.mediaSvc = ctx.Service(MEDIA_SVC).(*MediaService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *ContentService) Start() error {
	return nil
}

func (svc *ContentService) Catalog() *progression.Catalog {
	return svc.catalog
}

// ==================== CATALOG METHODS ====================

func (svc *ContentService) GetPunchCatalog() dto.CatalogResponse {
	punches := svc.catalog.Punches()
	out := dto.CatalogResponse{Punches: make([]dto.PunchResponse, 0, len(punches))}
	for i, p := range punches {
		videos := p.Videos
		if videos == nil {
			videos = []string{}
		}
		out.Punches = append(out.Punches, dto.PunchResponse{
			ID:     p.ID,
			Name:   p.Name,
			Level:  i + 1,
			Videos: videos,
		})
	}
	return out
}

// GetUnlockedContent lists what acc has unlocked, with download links when object storage is on.
func (svc *ContentService) GetUnlockedContent(ctx context.Context, acc *model.Account) (*dto.UnlockedContentResponse, error) {
	content := progression.UnlockedContent(acc, svc.catalog)

	resp := &dto.UnlockedContentResponse{
		Punches: content.Punches,
		Videos:  content.Videos,
	}

	links, err := svc.mediaSvc.VideoLinks(ctx, content.Videos)
	if err != nil {
		return nil, err
	}
	resp.Media = links
	return resp, nil
}

// ==================== TRAINING METHODS ====================

func (svc *ContentService) ParseCombo(req dto.ComboRequest) dto.ComboResponse {
	return dto.ComboResponse{
		Input: req.Combo,
		Combo: training.Describe(req.Combo),
	}
}

func (svc *ContentService) GetMoves() []training.Move {
	return training.Moves()
}
