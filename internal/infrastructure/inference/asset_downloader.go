package inference

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"

	httpclients "github.com/eappleew/Chat-Cheappt/internal/utils/httpclients"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

// AssetDownloader fetches generated image bytes from the short-lived URLs
// the upstream API returns.
type AssetDownloader struct {
	client *resty.Client
}

func NewAssetDownloader() *AssetDownloader {
	client := httpclients.NewClient("ImageAssetClient")
	client.SetTimeout(60 * time.Second)
	return &AssetDownloader{client: client}
}

func (d *AssetDownloader) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"failed to download generated image",
			err,
			"c4a8e1f6-3b97-4d25-8e60-9f2b5d7a1c48",
		)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("image download returned status %d", resp.StatusCode()),
			nil,
			"d9f5b2e8-6a04-4c71-b3d9-1e8c4f6a0b52",
		)
	}
	return resp.Bytes(), nil
}
