package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// File is one upload part.
type File struct {
	Name    string
	Content io.Reader
}

type formFile struct {
	field string
	file  File
}

// Form is a multipart payload for the file-accepting endpoints.
type Form struct {
	fields [][2]string
	files  []formFile
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Field(name, value string) *Form {
	f.fields = append(f.fields, [2]string{name, value})
	return f
}

func (f *Form) File(field string, file File) *Form {
	f.files = append(f.files, formFile{field: field, file: file})
	return f
}

func (f *Form) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}
	for _, ff := range f.files {
		part, err := w.CreateFormFile(ff.field, ff.file.Name)
		if err != nil {
			return nil, "", err
		}
		if ff.file.Content == nil {
			continue
		}
		if _, err := io.Copy(part, ff.file.Content); err != nil {
			return nil, "", fmt.Errorf("copy %s: %w", ff.file.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
