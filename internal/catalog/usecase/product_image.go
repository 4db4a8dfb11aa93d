package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shoplyhq/shoply/internal/catalog/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"github.com/shoplyhq/shoply/internal/pkg/storage"
)

//nolint:gochecknoglobals // global for fast reuse
var imageContentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var errImageTooLarge = errors.New("image exceeds max size")

type ProductImageInput struct {
	File        io.Reader
	ContentType string
}

// ProductImage stores the uploaded file through the storage driver and saves
// its public URL on the product.
func (s *Usecase) ProductImage(ctx context.Context, id int64, in ProductImageInput) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductImage")
	defer span.End()

	product, err := s.ProductGet(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.File == nil {
		return nil, goerror.NewInvalidInput(nil, "image", "image file is required")
	}

	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := imageContentTypeExt[contentType]
	if !ok {
		return nil, goerror.NewInvalidInput(nil, "image", "unsupported image content type")
	}

	bucket := strings.TrimSpace(s.cfg.GetString("modules.catalog.image_bucket"))
	baseURL := strings.TrimSpace(s.cfg.GetString("modules.catalog.image_base_url"))
	key := fmt.Sprintf("products/%d/%s%s", product.ID, s.oid.Generate(), ext)
	maxSize := s.cfg.GetInt64("modules.catalog.image_max_size_bytes")

	reader := &maxBytesReader{r: in.File, max: maxSize}
	_, err = s.storage.PutObject(ctx, bucket, key, reader, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
		Metadata:    map[string]string{"product_id": strconv.FormatInt(product.ID, 10)},
	})
	if err != nil {
		if errors.Is(err, errImageTooLarge) {
			return nil, goerror.NewInvalidInput(errImageTooLarge)
		}
		slog.ErrorContext(ctx, "failed to upload product image", "product_id", product.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	imageURL := baseURL + "/" + key
	if err := s.repoDB.UpdateProductImage(ctx, product.ID, imageURL); err != nil {
		slog.ErrorContext(ctx, "failed to update product image", "product_id", product.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	product.ImageURL = imageURL
	return product, nil
}

type maxBytesReader struct {
	r     io.Reader
	max   int64
	read  int64
	buf   [1]byte
	ended bool
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if m.read >= m.max {
		if m.ended {
			return 0, errImageTooLarge
		}

		n, err := m.r.Read(m.buf[:])
		if n > 0 {
			m.ended = true
			return 0, errImageTooLarge
		}
		if err == nil {
			m.ended = true
			return 0, errImageTooLarge
		}
		return 0, err
	}

	remaining := m.max - m.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := m.r.Read(p)
	m.read += int64(n)
	return n, err
}
