package httpfield

import "github.com/horu/restinio/easyparser"

// ContentEncoding holds the ordered, lowercased list of Content-Encoding
// tokens.
type ContentEncoding struct {
	Values []string
}

// ContentEncodingProducer parses 1#token: RFC 7230's non-empty list rule,
// so an empty or all-separator value fails.
func ContentEncodingProducer() easyparser.Producer[ContentEncoding] {
	values := easyparser.NonEmptyListProducer(easyparser.ToLower(easyparser.TokenProducer()))

	return easyparser.Produce[ContentEncoding](
		easyparser.Bind(values, easyparser.Field(func(e *ContentEncoding) *[]string { return &e.Values })),
	)
}

// ParseContentEncoding parses a complete Content-Encoding header value
// (RFC 7231 §3.1.2.2: 1#content-coding). An empty input is rejected
// rather than treated as an empty list.
func ParseContentEncoding(value string) (ContentEncoding, error) {
	return easyparser.TryParseString(value, ContentEncodingProducer())
}
