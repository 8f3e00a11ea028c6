package config

import "golang.org/x/text/language"

// cjkBases are the base languages rendered in CJK scripts.
var cjkBases = map[string]bool{
	"zh": true,
	"ja": true,
	"ko": true,
}

// IsCJKLanguage reports whether the language tag names Chinese, Japanese,
// or Korean. Any tag form the speech service emits is accepted ("zh",
// "zho", "ja-JP", "ko_KR"); unparseable or empty tags are not CJK.
func IsCJKLanguage(tag string) bool {
	if tag == "" {
		return false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return false
	}
	base, _ := t.Base()
	return cjkBases[base.String()]
}
