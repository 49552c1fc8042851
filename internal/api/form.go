package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	"sklep-api/internal/storage"
)

// unknownFieldPolicy decides what a form scan does with a field name outside
// the expected set. Creation expects the exact field set; partial update
// applies whatever known fields are present.
type unknownFieldPolicy int

const (
	rejectUnknownFields unknownFieldPolicy = iota
	skipUnknownFields
)

// formError marks a client-side form problem; the boundary maps it to 400.
type formError string

func (e formError) Error() string { return string(e) }

type productForm struct {
	ProductName *string
	PriceCents  *int64
	Stock       *int32
	SKU         *string
	CategoryID  *string
	ImageKey    *string
}

// scanProductForm walks the multipart stream field by field. The image field
// is uploaded to object storage as soon as it is seen and only its storage
// key is kept; nothing references the object until the database write
// succeeds, so an aborted request leaves at worst an unreferenced object.
func (s *Server) scanProductForm(r *http.Request, policy unknownFieldPolicy) (*productForm, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, formError("Invalid multipart form")
	}

	form := &productForm{}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, formError("Malformed multipart form")
		}

		switch part.FormName() {
		case "product_name":
			text, err := readPartText(part)
			if err != nil {
				return nil, err
			}
			form.ProductName = &text

		case "price":
			text, err := readPartText(part)
			if err != nil {
				return nil, err
			}
			cents, err := parsePriceCents(text)
			if err != nil {
				return nil, formError("Invalid price: " + text)
			}
			form.PriceCents = &cents

		case "stock":
			text, err := readPartText(part)
			if err != nil {
				return nil, err
			}
			stock, err := strconv.ParseInt(text, 10, 32)
			if err != nil || stock < 0 {
				return nil, formError("Invalid stock: " + text)
			}
			stock32 := int32(stock)
			form.Stock = &stock32

		case "sku":
			text, err := readPartText(part)
			if err != nil {
				return nil, err
			}
			form.SKU = &text

		case "category_id":
			text, err := readPartText(part)
			if err != nil {
				return nil, err
			}
			form.CategoryID = &text

		case "product_image":
			key, err := s.uploadProductImage(r.Context(), part)
			if err != nil {
				return nil, err
			}
			form.ImageKey = &key

		default:
			if policy == rejectUnknownFields {
				return nil, formError("Unexpected field found in form data")
			}
			// NextPart discards the rest of a skipped field.
		}
	}

	return form, nil
}

// uploadProductImage streams one file field into object storage and returns
// the generated key. The extension comes from the declared filename only; an
// empty extension is allowed.
func (s *Server) uploadProductImage(ctx context.Context, part *multipart.Part) (string, error) {
	filename := part.FileName()
	key := storage.ObjectKey(filename)
	contentType := mime.TypeByExtension(path.Ext(filename))

	content, err := io.ReadAll(part)
	if err != nil {
		return "", formError("Failed to read file content")
	}

	if err := s.storage.Put(ctx, key, bytes.NewReader(content), contentType); err != nil {
		return "", fmt.Errorf("storage unavailable: %w", err)
	}

	return key, nil
}

func readPartText(part *multipart.Part) (string, error) {
	content, err := io.ReadAll(part)
	if err != nil {
		return "", formError("Failed to read form field " + part.FormName())
	}
	return string(content), nil
}

// parsePriceCents converts a decimal price string ("12.34") into integer
// minor units. Prices stay integers end-to-end; floats are never involved.
func parsePriceCents(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+") {
		return 0, fmt.Errorf("invalid price %q", text)
	}

	whole, frac, hasFrac := strings.Cut(text, ".")
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("invalid price %q", text)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("invalid price %q", text)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("invalid price %q", text)
		}
	}

	return units*100 + cents, nil
}
