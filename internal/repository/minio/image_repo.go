package minio

import (
	"context"
	"net/url"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo реализует репозиторий изображений каталога поверх MinIO.
// Витрина только читает изображения: ключи объектов приходят из каталога,
// репозиторий разворачивает их в presigned-ссылки для клиента.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// PresignedURL возвращает временную GET-ссылку на объект изображения.
func (i *ImageRepo) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, key, i.cfg.PresignTTL, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}
