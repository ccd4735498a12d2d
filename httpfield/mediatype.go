package httpfield

import (
	"github.com/horu/restinio/easyparser"
)

// MediaType represents a parsed Media-Type value: type and subtype are
// always ASCII-lowercased; parameter names are lowercased, parameter
// values are preserved exactly as written (unquoted if they arrived as a
// quoted-string).
type MediaType struct {
	Type       string
	Subtype    string
	Parameters PairList
}

func mediaTypeParameterProducer() easyparser.Producer[Pair] {
	return easyparser.Produce[Pair](
		easyparser.OWS[Pair](),
		easyparser.Symbol[Pair](';'),
		easyparser.OWS[Pair](),
		easyparser.Bind(easyparser.ToLower(easyparser.TokenProducer()), easyparser.Field(func(p *Pair) *string { return &p.Name })),
		easyparser.Symbol[Pair]('='),
		easyparser.Bind(easyparser.TokenOrQuotedStringProducer(), easyparser.Field(func(p *Pair) *string { return &p.Value })),
	)
}

// MediaTypeProducer parses token "/" token *( OWS ";" OWS token "="
// ( token / quoted-string ) ), the media-type grammar of RFC 7231
// §3.1.1.1.
func MediaTypeProducer() easyparser.Producer[MediaType] {
	param := mediaTypeParameterProducer()

	return easyparser.Produce[MediaType](
		easyparser.Bind(easyparser.ToLower(easyparser.TokenProducer()), easyparser.Field(func(m *MediaType) *string { return &m.Type })),
		easyparser.Symbol[MediaType]('/'),
		easyparser.Bind(easyparser.ToLower(easyparser.TokenProducer()), easyparser.Field(func(m *MediaType) *string { return &m.Subtype })),
		easyparser.Repeat(0, easyparser.Unbounded, easyparser.Bind(param, easyparser.ToContainer(func(m *MediaType) *[]Pair { return (*[]Pair)(&m.Parameters) }))),
	)
}

// ParseMediaType parses a complete Media-Type header value.
func ParseMediaType(value string) (MediaType, error) {
	return easyparser.TryParseString(value, MediaTypeProducer())
}
