package client

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	ContentTypeJSON     = "application/json"
)

// Request describes one API call. Path is either relative to the base URL or an absolute URL.
// Body carries raw text, Form a multipart payload; Form takes precedence.
type Request struct {
	Path   string
	Method string
	Body   []byte
	Form   *Form
	Header http.Header
	err    error
}

// Form is a multipart payload with ordered fields and files
type Form struct {
	Fields []FormField
	Files  []FormFile
}

// FormField is a plain form value
type FormField struct {
	Name  string
	Value string
}

// FormFile is an uploaded document
type FormFile struct {
	Field    string
	FileName string
	Content  []byte
}

// NewRequest creates a request without a body
func NewRequest(method, path string) *Request {
	return &Request{Method: method, Path: path}
}

// JSON creates a request with a JSON encoded body; an encoding error surfaces as a failed Envelope.
func JSON(method, path string, payload interface{}) *Request {
	ret := NewRequest(method, path)
	ret.Body, ret.err = json.Marshal(payload)
	return ret
}

// Multipart creates a request carrying form
func Multipart(method, path string, form *Form) *Request {
	ret := NewRequest(method, path)
	ret.Form = form
	return ret
}

// WithHeader sets a caller header, caller headers override pipeline defaults.
func (r *Request) WithHeader(key, value string) *Request {
	if r.Header == nil {
		r.Header = http.Header{}
	}
	r.Header.Set(key, value)
	return r
}

func (r *Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// payload returns a fresh body reader so that the request can be replayed; contentType is set for forms only.
func (r *Request) payload() (body io.Reader, contentType string, err error) {
	if r.Form != nil {
		return r.Form.encode()
	}
	if r.Body != nil {
		return bytes.NewReader(r.Body), "", nil
	}
	return nil, "", nil
}

// AddField appends a form value
func (f *Form) AddField(name, value string) *Form {
	f.Fields = append(f.Fields, FormField{Name: name, Value: value})
	return f
}

// AddFile appends a document
func (f *Form) AddFile(field, fileName string, content []byte) *Form {
	f.Files = append(f.Files, FormFile{Field: field, FileName: fileName, Content: content})
	return f
}

func (f *Form) encode() (io.Reader, string, error) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	for _, field := range f.Fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.Files {
		part, err := writer.CreateFormFile(file.Field, file.FileName)
		if err != nil {
			return nil, "", err
		}
		if _, err = part.Write(file.Content); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buffer, writer.FormDataContentType(), nil
}
