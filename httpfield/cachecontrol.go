package httpfield

import "github.com/horu/restinio/easyparser"

// CacheControl holds the ordered list of cache-directive pairs. A
// directive like no-transform carries no value; one like max-age=5 does.
type CacheControl struct {
	Directives OptPairList
}

func setOptValue(p *OptPair, v string) {
	p.Value = &v
}

func cacheDirectiveProducer() easyparser.Producer[OptPair] {
	value := easyparser.TokenOrQuotedStringProducer()

	hasValue := easyparser.Sequence[OptPair](
		easyparser.Symbol[OptPair]('='),
		easyparser.Bind(value, setOptValue),
	)

	return easyparser.Produce[OptPair](
		easyparser.Bind(easyparser.ToLower(easyparser.TokenProducer()), easyparser.Field(func(p *OptPair) *string { return &p.Name })),
		easyparser.Maybe[OptPair](hasValue),
	)
}

// CacheControlProducer parses 1#cache-directive, each directive being
// token [ "=" ( token / quoted-string ) ]. Directive names are lowercased.
func CacheControlProducer() easyparser.Producer[CacheControl] {
	directives := easyparser.NonEmptyListProducer(cacheDirectiveProducer())

	return easyparser.Produce[CacheControl](
		easyparser.Bind(directives, easyparser.Field(func(cc *CacheControl) *[]OptPair { return (*[]OptPair)(&cc.Directives) })),
	)
}

// ParseCacheControl parses a complete Cache-Control header value.
func ParseCacheControl(value string) (CacheControl, error) {
	return easyparser.TryParseString(value, CacheControlProducer())
}
