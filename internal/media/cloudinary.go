package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary is the Storage backed by a cloudinary account.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	const op = "NewCloudinary"
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create cloudinary client, err=%w", op, err)
	}
	cld.Config.URL.Secure = true
	return &Cloudinary{cld: cld}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, key string, file io.Reader) error {
	const op = "Upload"
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:  key,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("[%s] Fail to upload asset, key=%s, err=%w", op, key, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("[%s] Provider rejected asset, key=%s, err=%w", op, key, errors.New(res.Error.Message))
	}
	return nil
}

func (c *Cloudinary) Version(ctx context.Context, key string) (int, error) {
	const op = "Version"
	res, err := c.cld.Admin.Asset(ctx, admin.AssetParams{PublicID: key})
	if err != nil {
		return 0, fmt.Errorf("[%s] Fail to fetch asset, key=%s, err=%w", op, key, err)
	}
	if res.Error.Message != "" {
		return 0, fmt.Errorf("[%s] Asset lookup failed, key=%s, err=%w", op, key, errors.New(res.Error.Message))
	}
	return res.Version, nil
}

func (c *Cloudinary) URL(key string, format Format, version int) (string, error) {
	const op = "URL"
	image, err := c.cld.Image(key)
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to build asset, key=%s, err=%w", op, key, err)
	}
	image.Transformation = format.Transformation()
	if version > 0 {
		image.Version = version
	}
	url, err := image.String()
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to build url, key=%s, err=%w", op, key, err)
	}
	return url, nil
}
