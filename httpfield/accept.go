package httpfield

import "github.com/horu/restinio/easyparser"

// AcceptItem is a single media-range entry from an Accept header: a
// Media-Type, an optional weight, and any accept-ext parameters that
// followed the weight.
type AcceptItem struct {
	MediaType    MediaType
	Weight       *easyparser.QValue
	AcceptParams OptPairList
}

// acceptExtProducer parses accept-ext = OWS ";" OWS token
// [ "=" ( token / quoted-string ) ]: unlike a Media-Type parameter, its
// value is optional.
func acceptExtProducer() easyparser.Producer[OptPair] {
	value := easyparser.TokenOrQuotedStringProducer()

	hasValue := easyparser.Sequence[OptPair](
		easyparser.Symbol[OptPair]('='),
		easyparser.Bind(value, setOptValue),
	)

	return easyparser.Produce[OptPair](
		easyparser.OWS[OptPair](),
		easyparser.Symbol[OptPair](';'),
		easyparser.OWS[OptPair](),
		easyparser.Bind(easyparser.ToLower(easyparser.TokenProducer()), easyparser.Field(func(p *OptPair) *string { return &p.Name })),
		easyparser.Maybe[OptPair](hasValue),
	)
}

// splitWeight separates a freshly parsed MediaType's parameter list at its
// first "q" parameter: a Media-Type parameter always carries a value, so
// the greedy Media-Type parameter loop happily consumes "q=0.5" right
// alongside "charset=utf-8" before it ever reaches a valueless accept-ext
// entry. Everything from "q" onward is therefore pulled back out:
// everything before stays a Media-Type parameter, "q" itself becomes the
// weight, and anything already captured past it becomes leading
// accept-ext. A Media-Type with no "q" parameter is left untouched.
func splitWeight(item *AcceptItem) error {
	params := item.MediaType.Parameters

	idx := -1
	for i, p := range params {
		if p.Name == "q" {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil
	}

	q, err := easyparser.TryParseString(params[idx].Value, easyparser.QValueProducer())
	if err != nil {
		return err
	}

	item.Weight = &q
	item.MediaType.Parameters = params[:idx]

	rest := params[idx+1:]
	for _, p := range rest {
		v := p.Value
		item.AcceptParams = append(item.AcceptParams, OptPair{Name: p.Name, Value: &v})
	}

	return nil
}

// AcceptItemProducer parses Media-Type [ weight *accept-ext ]. The weight
// and any accept-ext entries up to the first valueless one are recovered
// from the Media-Type's own parameter list by splitWeight; any remaining
// accept-ext entries, which a Media-Type parameter cannot express because
// they may be valueless, are then parsed directly.
func AcceptItemProducer() easyparser.Producer[AcceptItem] {
	mediaType := MediaTypeProducer()
	ext := acceptExtProducer()

	return func(c *easyparser.Cursor) (AcceptItem, error) {
		start := c.Mark()

		mt, err := mediaType(c)
		if err != nil {
			return AcceptItem{}, err
		}

		item := AcceptItem{MediaType: mt}
		if err := splitWeight(&item); err != nil {
			c.Rewind(start)
			return AcceptItem{}, err
		}

		for {
			p, err := ext(c)
			if err != nil {
				break
			}

			item.AcceptParams = append(item.AcceptParams, p)
		}

		return item, nil
	}
}

// Accept holds the ordered list of Accept media ranges.
type Accept struct {
	Items []AcceptItem
}

// AcceptProducer parses #( Media-Type [ weight *accept-ext ] ): the list
// may be empty, per the `#` list rule RFC 7231 §5.3.2 uses for Accept.
func AcceptProducer() easyparser.Producer[Accept] {
	items := easyparser.MaybeEmptyListProducer(AcceptItemProducer())

	return easyparser.Produce[Accept](
		easyparser.Bind(items, easyparser.Field(func(a *Accept) *[]AcceptItem { return &a.Items })),
	)
}

// ParseAccept parses a complete Accept header value.
func ParseAccept(value string) (Accept, error) {
	return easyparser.TryParseString(value, AcceptProducer())
}
