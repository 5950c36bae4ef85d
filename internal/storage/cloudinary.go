package storage

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const uploadFolder = "blog-api"

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudName, apiKey, apiSecret string) (Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	return &cloudinaryUploader{
		cld: cld,
	}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: uuid.NewString(),
		Folder: uploadFolder,
	})
	if err != nil {
		return "", err
	}

	return result.SecureURL, nil
}
