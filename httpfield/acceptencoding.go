package httpfield

import "github.com/horu/restinio/easyparser"

// AcceptEncodingItem is a single coding entry from an Accept-Encoding
// header: a lowercased coding token and an optional weight.
type AcceptEncodingItem struct {
	Coding string
	Weight *easyparser.QValue
}

func setEncodingWeight(item *AcceptEncodingItem, q easyparser.QValue) {
	item.Weight = &q
}

// AcceptEncodingItemProducer parses token [ weight ].
func AcceptEncodingItemProducer() easyparser.Producer[AcceptEncodingItem] {
	return easyparser.Produce[AcceptEncodingItem](
		easyparser.Bind(easyparser.ToLower(easyparser.TokenProducer()), easyparser.Field(func(i *AcceptEncodingItem) *string { return &i.Coding })),
		easyparser.Maybe[AcceptEncodingItem](
			easyparser.Bind(easyparser.WeightProducer(), setEncodingWeight),
		),
	)
}

// AcceptEncoding holds the ordered list of coding entries. Accept-Encoding
// uses the maybe-empty list rule, so a header value with no real codings
// (e.g. all commas and whitespace, or the empty string) parses
// successfully to an empty slice rather than failing.
type AcceptEncoding struct {
	Items []AcceptEncodingItem
}

// AcceptEncodingProducer parses #( token [ weight ] ), with no accept-ext.
func AcceptEncodingProducer() easyparser.Producer[AcceptEncoding] {
	items := easyparser.MaybeEmptyListProducer(AcceptEncodingItemProducer())

	return easyparser.Produce[AcceptEncoding](
		easyparser.Bind(items, easyparser.Field(func(a *AcceptEncoding) *[]AcceptEncodingItem { return &a.Items })),
	)
}

// ParseAcceptEncoding parses a complete Accept-Encoding header value.
func ParseAcceptEncoding(value string) (AcceptEncoding, error) {
	return easyparser.TryParseString(value, AcceptEncodingProducer())
}
