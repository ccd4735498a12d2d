package httpfield

import "github.com/horu/restinio/easyparser"

// ContentDisposition is a disposition-type followed by its parameters, as
// in `attachment; filename="report.pdf"`. The disposition type is
// lowercased; parameter names are lowercased, parameter values are
// preserved exactly as written (unquoted and unescaped if they arrived as a
// quoted-string).
type ContentDisposition struct {
	Type       string
	Parameters PairList
}

func dispositionParameterProducer() easyparser.Producer[Pair] {
	return easyparser.Produce[Pair](
		easyparser.OWS[Pair](),
		easyparser.Symbol[Pair](';'),
		easyparser.OWS[Pair](),
		easyparser.Bind(easyparser.ToLower(easyparser.TokenProducer()), easyparser.Field(func(p *Pair) *string { return &p.Name })),
		easyparser.Symbol[Pair]('='),
		easyparser.Bind(easyparser.TokenOrQuotedStringProducer(), easyparser.Field(func(p *Pair) *string { return &p.Value })),
	)
}

// ContentDispositionProducer parses token *( OWS ";" OWS token "="
// ( token / quoted-string ) ).
func ContentDispositionProducer() easyparser.Producer[ContentDisposition] {
	param := dispositionParameterProducer()

	return easyparser.Produce[ContentDisposition](
		easyparser.Bind(easyparser.ToLower(easyparser.TokenProducer()), easyparser.Field(func(d *ContentDisposition) *string { return &d.Type })),
		easyparser.Repeat(0, easyparser.Unbounded, easyparser.Bind(param, easyparser.ToContainer(func(d *ContentDisposition) *[]Pair { return (*[]Pair)(&d.Parameters) }))),
	)
}

// ParseContentDisposition parses a complete Content-Disposition header
// value.
func ParseContentDisposition(value string) (ContentDisposition, error) {
	return easyparser.TryParseString(value, ContentDispositionProducer())
}

func (d ContentDisposition) lookup(name string) (string, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}

	return "", false
}

// Filename returns the value of the "filename" parameter, unquoted and
// unescaped but otherwise exactly as parsed, and whether it was present.
// No RFC 5987 decoding is performed.
func (d ContentDisposition) Filename() (string, bool) {
	return d.lookup("filename")
}

// FilenameStar returns the raw value of the "filename*" parameter and
// whether it was present. Its ext-value syntax (charset'language'value) is
// returned verbatim; decoding it is out of scope.
func (d ContentDisposition) FilenameStar() (string, bool) {
	return d.lookup("filename*")
}
