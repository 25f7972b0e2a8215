package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadMultipartFile stores an uploaded file (logos, item images) under
// a random key and returns the public URL.
func UploadMultipartFile(
	ctx context.Context,
	client *R2Client,
	prefix string,
	file *multipart.FileHeader,
) (string, error) {

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := fmt.Sprintf(
		"%s/%s%s",
		prefix,
		uuid.New().String(),
		filepath.Ext(file.Filename),
	)

	return client.Upload(ctx, key, f)
}
