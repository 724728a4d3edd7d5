package services

import (
	"context"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/shadowbox-gym/shadowbox_api/dto"
)

// MediaService turns video ids into short-lived download links.
type MediaService struct {
	appContext.DefaultService
	minioSvc *MinIOService
	expiry   time.Duration
	now      func() time.Time
}

const MEDIA_SVC = "media_svc"

const videoObjectPrefix = "videos/"

func NewMediaService(minioSvc *MinIOService, expiry time.Duration) *MediaService {
	return &MediaService{minioSvc: minioSvc, expiry: expiry, now: time.Now}
}

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *appContext.Context) error {
	svc.minioSvc = ctx.Service(MINIO_SVC).(*MinIOService)
	svc.expiry = ctx.Service(CONFIG_SVC).(*ConfigService).Config().MediaURLExpiry
	svc.now = time.Now
	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	return nil
}

func (svc *MediaService) Enabled() bool {
	return svc != nil && svc.minioSvc.Enabled()
}

func VideoObjectName(videoID string) string {
	return videoObjectPrefix + videoID + ".mp4"
}

// VideoLinks presigns one link per distinct video id, in first-seen order.
// Returns nil when object storage is disabled.
func (svc *MediaService) VideoLinks(ctx context.Context, videoIDs []string) ([]dto.MediaLink, error) {
	if !svc.Enabled() {
		return nil, nil
	}

	expiresAt := svc.now().Add(svc.expiry).UTC()
	seen := make(map[string]struct{}, len(videoIDs))
	links := make([]dto.MediaLink, 0, len(videoIDs))

	for _, id := range videoIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		u, err := svc.minioSvc.GetFileURL(ctx, VideoObjectName(id), svc.expiry)
		if err != nil {
			log.WithField("video_id", id).WithError(err).Error("Failed to presign video")
			return nil, err
		}
		links = append(links, dto.MediaLink{VideoID: id, URL: u, ExpiresAt: expiresAt})
	}
	return links, nil
}
