// Package contenttype maps file names and Content-Type header values
// onto the closed set of content types the server knows about.
package contenttype

import (
	"strings"

	"github.com/ydb-platform/httpcore/library/go/httputil/headers"
)

type ContentType int

const (
	Unknown ContentType = iota
	JSON
	HTML
	PNG
	JPEG
	CSS
	JavaScript
	Text
)

var names = [...]string{
	Unknown:    "Unknown",
	JSON:       "JSON",
	HTML:       "HTML",
	PNG:        "PNG",
	JPEG:       "JPEG",
	CSS:        "CSS",
	JavaScript: "JavaScript",
	Text:       "Text",
}

// String returns the variant name; it is also used to name capture sinks.
func (ct ContentType) String() string {
	if ct < 0 || int(ct) >= len(names) {
		return names[Unknown]
	}

	return names[ct]
}

var mimeTypes = map[ContentType]headers.ContentType{
	JSON:       headers.TypeApplicationJSON,
	HTML:       headers.TypeTextHTML,
	PNG:        headers.TypeImagePNG,
	JPEG:       headers.TypeImageJPEG,
	CSS:        headers.TypeTextCSS,
	JavaScript: headers.TypeTextJavascript,
	Text:       headers.TypeTextPlain,
}

// MIME returns the canonical MIME string, empty for Unknown.
func (ct ContentType) MIME() string {
	return mimeTypes[ct].String()
}

// IsBinary reports whether the content must be handled byte-for-byte.
func (ct ContentType) IsBinary() bool {
	return ct == PNG || ct == JPEG
}

type extension struct {
	suffix      string
	contentType ContentType
}

// order matters: the first matching suffix wins
var extensions = []extension{
	{suffix: ".json", contentType: JSON},
	{suffix: ".html", contentType: HTML},
	{suffix: ".png", contentType: PNG},
	{suffix: ".jpg", contentType: JPEG},
	{suffix: ".jpeg", contentType: JPEG},
	{suffix: ".css", contentType: CSS},
	{suffix: ".js", contentType: JavaScript},
	{suffix: ".txt", contentType: Text},
}

// FromFileName derives the content type from the file name suffix, ignoring case.
func FromFileName(path string) ContentType {
	lowered := strings.ToLower(path)

	for _, ext := range extensions {
		if strings.HasSuffix(lowered, ext.suffix) {
			return ext.contentType
		}
	}

	return Unknown
}

// FromContentTypeString matches a header value against the canonical MIME strings exactly.
func FromContentTypeString(value string) ContentType {
	for ct, mime := range mimeTypes {
		if value == mime.String() {
			return ct
		}
	}

	return Unknown
}
