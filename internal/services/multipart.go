package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/example/shafran-admin/internal/models"
)

// multipartBody is a fully encoded multipart/form-data payload.
type multipartBody struct {
	data        []byte
	contentType string
}

type formBuilder struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newFormBuilder() *formBuilder {
	b := &formBuilder{}
	b.w = multipart.NewWriter(&b.buf)
	return b
}

func (b *formBuilder) field(name, value string) {
	if b.err != nil {
		return
	}
	b.err = b.w.WriteField(name, value)
}

func (b *formBuilder) intField(name string, value int64) {
	b.field(name, strconv.FormatInt(value, 10))
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (b *formBuilder) file(name string, upload models.Upload) {
	if b.err != nil {
		return
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filename := upload.Name
	if filename == "" {
		filename = "photo"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(name), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := b.w.CreatePart(h)
	if err != nil {
		b.err = err
		return
	}
	_, b.err = part.Write(upload.Data)
}

func (b *formBuilder) build() (*multipartBody, error) {
	if b.err != nil {
		return nil, fmt.Errorf("encode multipart form: %w", b.err)
	}
	if err := b.w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart form: %w", err)
	}
	return &multipartBody{data: b.buf.Bytes(), contentType: b.w.FormDataContentType()}, nil
}

// encodeProductInput sends every scalar field followed by the photos.
func encodeProductInput(in models.ProductInput) (*multipartBody, error) {
	b := newFormBuilder()
	b.field("name", in.Name)
	b.intField("price", in.Price)
	b.field("size", in.Size)
	b.intField("quantityInBox", in.QuantityInBox)
	b.field("description", in.Description)
	b.intField("stock", in.Stock)
	for _, photo := range in.Photos {
		b.file("photos", photo)
	}
	return b.build()
}

// encodeProductUpdate keeps the three channels apart: scalar fields that are
// set, the retained existing photos in order, then the new binary photos.
func encodeProductUpdate(up models.ProductUpdate) (*multipartBody, error) {
	b := newFormBuilder()
	if up.Name != nil {
		b.field("name", *up.Name)
	}
	if up.Price != nil {
		b.intField("price", *up.Price)
	}
	if up.Size != nil {
		b.field("size", *up.Size)
	}
	if up.QuantityInBox != nil {
		b.intField("quantityInBox", *up.QuantityInBox)
	}
	if up.Description != nil {
		b.field("description", *up.Description)
	}
	if up.Stock != nil {
		b.intField("stock", *up.Stock)
	}
	for _, ref := range up.ExistingPhotos {
		b.field("existingPhotos", ref)
	}
	for _, photo := range up.Photos {
		b.file("photos", photo)
	}
	return b.build()
}
