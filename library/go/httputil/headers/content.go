package headers

type ContentType string

// String implements stringer interface
func (ct ContentType) String() string {
	return string(ct)
}

const (
	ContentTypeKey   = "Content-Type"
	ContentLengthKey = "Content-Length"

	TypeApplicationJSON ContentType = "application/json"

	TypeTextPlain      ContentType = "text/plain"
	TypeTextHTML       ContentType = "text/html"
	TypeTextCSS        ContentType = "text/css"
	TypeTextJavascript ContentType = "text/javascript"

	TypeImageJPEG ContentType = "image/jpeg"
	TypeImagePNG  ContentType = "image/png"
)
