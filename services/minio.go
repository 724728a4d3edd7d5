package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	appcontext "github.com/alphabatem/common/context"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"github.com/shadowbox-gym/shadowbox_api/config"
)

// MinIOService wraps the object store holding training videos. It is disabled
// when MINIO_ENDPOINT is empty.
type MinIOService struct {
	appcontext.DefaultService
	client     *minio.Client
	bucketName string
	cfg        config.Storage
}

const MINIO_SVC = "minio_svc"

// NewMinIOService builds a client without touching the network.
func NewMinIOService(cfg config.Storage) (*MinIOService, error) {
	svc := &MinIOService{cfg: cfg, bucketName: cfg.Bucket}
	if err := svc.connect(); err != nil {
		return nil, err
	}
	return svc, nil
}

func (svc MinIOService) Id() string {
	return MINIO_SVC
}

func (svc *MinIOService) Configure(ctx *appcontext.Context) error {
	svc.cfg = ctx.Service(CONFIG_SVC).(*ConfigService).Config().Storage
	svc.bucketName = svc.cfg.Bucket
	return svc.DefaultService.Configure(ctx)
}

func (svc *MinIOService) Start() error {
	if !svc.cfg.Enabled() {
		log.Info("MinIO disabled, media links will not be generated")
		return nil
	}

	if err := svc.connect(); err != nil {
		return err
	}

	if err := svc.ensureBucket(); err != nil {
		return fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	log.Printf("MinIO service started successfully with endpoint: %s", svc.cfg.Endpoint)
	return nil
}

func (svc *MinIOService) connect() error {
	if !svc.cfg.Enabled() {
		return nil
	}
	client, err := minio.New(svc.cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(svc.cfg.AccessKey, svc.cfg.SecretKey, ""),
		Secure: svc.cfg.UseSSL,
		// A fixed region lets presigning skip the bucket location lookup.
		Region: svc.cfg.Region,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %v", err)
	}
	svc.client = client
	return nil
}

func (svc *MinIOService) ensureBucket() error {
	ctx := context.Background()

	exists, err := svc.client.BucketExists(ctx, svc.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		err = svc.client.MakeBucket(ctx, svc.bucketName, minio.MakeBucketOptions{Region: svc.cfg.Region})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created MinIO bucket: %s", svc.bucketName)
	}

	return nil
}

func (svc *MinIOService) Enabled() bool {
	return svc != nil && svc.client != nil
}

func (svc *MinIOService) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if !svc.Enabled() {
		return "", fmt.Errorf("minio client not initialized")
	}

	presignedURL, err := svc.client.PresignedGetObject(ctx, svc.bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}

	return presignedURL.String(), nil
}

func (svc *MinIOService) GetBucketName() string {
	return svc.bucketName
}
