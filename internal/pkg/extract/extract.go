// Package extract pulls plain text out of uploaded resume documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	TypePlain = "text/plain"
	TypePDF   = "application/pdf"
	TypeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// DetectType resolves the effective content type of an upload. Parameters
// like charset are stripped; browsers often send empty or generic types, so
// the filename extension is the fallback.
func DetectType(filename, contentType string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mt
	}
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	switch strings.ToLower(path.Ext(filename)) {
	case ".pdf":
		return TypePDF
	case ".docx":
		return TypeDocx
	case ".txt":
		return TypePlain
	default:
		return contentType
	}
}

// Text extracts plain text from data according to its content type.
func Text(contentType string, data []byte) (string, error) {
	switch contentType {
	case TypePlain:
		return string(data), nil
	case TypePDF:
		return pdfText(data)
	case TypeDocx:
		return docxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		b.WriteString(text)
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
