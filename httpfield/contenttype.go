package httpfield

import "github.com/horu/restinio/easyparser"

// ContentType wraps a MediaType, exactly as Content-Type's grammar is
// Media-Type's grammar (RFC 7231 §3.1.1.5).
type ContentType struct {
	MediaType MediaType
}

// ContentTypeProducer parses a Content-Type value.
func ContentTypeProducer() easyparser.Producer[ContentType] {
	return easyparser.Produce[ContentType](
		easyparser.Bind(MediaTypeProducer(), easyparser.Field(func(ct *ContentType) *MediaType { return &ct.MediaType })),
	)
}

// ParseContentType parses a complete Content-Type header value.
func ParseContentType(value string) (ContentType, error) {
	return easyparser.TryParseString(value, ContentTypeProducer())
}
