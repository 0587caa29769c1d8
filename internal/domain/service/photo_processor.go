package service

// ProcessedPhoto is a normalized image ready to be stored.
type ProcessedPhoto struct {
	Data        []byte
	ContentType string
	Extension   string // without the leading dot
}

// PhotoProcessor decodes an uploaded image and re-encodes it within configured bounds.
type PhotoProcessor interface {
	Process(data []byte) (*ProcessedPhoto, error)
}
