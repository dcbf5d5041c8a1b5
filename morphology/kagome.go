package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
	mode   tokenizer.TokenizeMode
}

// NewKagome uses normal mode, which keeps compounds such as 石打丸山スキー場
// in one token so the last token carries the reading of the word's ending.
func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: t,
		mode:   tokenizer.Normal,
	}, nil
}

func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, k.mode)
	kagomeTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		if len(features) > 1 && features[1] == "空白" {
			continue
		}
		kana := token.Surface
		if len(features) >= 8 {
			kana = features[7]
		}
		kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, kana))
	}
	return kagomeTokens
}
