package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// MultipartBody is a request body sent as multipart/form-data instead of JSON.
type MultipartBody struct {
	Fields []FormField
	Files  []FormFile
}

// FormField is a plain text form value.
type FormField struct {
	Name  string
	Value string
}

// FormFile is a file part of a multipart body. An empty ContentType is sent
// as application/octet-stream.
type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     io.Reader
}

// AddField appends a text field.
func (m *MultipartBody) AddField(name, value string) {
	m.Fields = append(m.Fields, FormField{Name: name, Value: value})
}

// AddFile appends a file part labelled with contentType.
func (m *MultipartBody) AddFile(field, filename, contentType string, content io.Reader) {
	m.Files = append(m.Files, FormFile{Field: field, Filename: filename, ContentType: contentType, Content: content})
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (f FormFile) header() textproto.MIMEHeader {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.Filename)))
	h.Set("Content-Type", contentType)
	return h
}

func (m *MultipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range m.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("apiclient: writing field %q: %w", f.Name, err)
		}
	}
	for _, f := range m.Files {
		part, err := w.CreatePart(f.header())
		if err != nil {
			return nil, "", fmt.Errorf("apiclient: creating file part %q: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("apiclient: copying file part %q: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}
