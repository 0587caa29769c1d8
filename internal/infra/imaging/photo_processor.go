// Package imaging normalizes uploaded profile photos.
package imaging

import (
	"bytes"
	"image"

	"userhub/config"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/service"
	"userhub/internal/errors"

	"github.com/disintegration/imaging"
)

const (
	defaultMaxDimension = 1024
	defaultJPEGQuality  = 85
)

// photoProcessor bounds photos to a square box and re-encodes them.
// PNG input stays PNG so transparency survives; everything else becomes JPEG.
type photoProcessor struct {
	maxDimension int
	jpegQuality  int
}

// NewPhotoProcessor builds the processor from storage settings.
func NewPhotoProcessor(cfg *config.Config) service.PhotoProcessor {
	p := &photoProcessor{
		maxDimension: defaultMaxDimension,
		jpegQuality:  defaultJPEGQuality,
	}
	if cfg.Storage != nil {
		if cfg.Storage.MaxPhotoDimension > 0 {
			p.maxDimension = cfg.Storage.MaxPhotoDimension
		}
		if cfg.Storage.JPEGQuality > 0 && cfg.Storage.JPEGQuality <= 100 {
			p.jpegQuality = cfg.Storage.JPEGQuality
		}
	}

	return p
}

func (p *photoProcessor) Process(data []byte) (*service.ProcessedPhoto, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrInvalidPhoto.WrapMessage("empty upload")
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.ErrInvalidPhoto.WrapMessage(err.Error())
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domainerrors.ErrInvalidPhoto.WrapMessage(err.Error())
	}

	// Fit never upscales, smaller images keep their size.
	fitted := imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if format == "png" {
		if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
			return nil, errors.Wrap(err, "failed to encode png")
		}

		return &service.ProcessedPhoto{Data: buf.Bytes(), ContentType: "image/png", Extension: "png"}, nil
	}

	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(p.jpegQuality)); err != nil {
		return nil, errors.Wrap(err, "failed to encode jpeg")
	}

	return &service.ProcessedPhoto{Data: buf.Bytes(), ContentType: "image/jpeg", Extension: "jpg"}, nil
}
