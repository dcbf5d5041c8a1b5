package tossicat

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	tests := []struct {
		template string
		want     TokenStream
	}{
		{
			template: "",
			want:     NewTokenStream(nil),
		},
		{
			template: "그냥 문장",
			want: NewTokenStream([]Token{
				{Kind: TextToken, Text: "그냥 문장", Start: 0, End: 13},
			}),
		},
		{
			template: "{한국어, 은} 좋다",
			want: NewTokenStream([]Token{
				{Kind: PlaceholderToken, Text: "{한국어, 은}", Word: "한국어", Particle: "은", Start: 0, End: 16},
				{Kind: TextToken, Text: " 좋다", Start: 16, End: 23},
			}),
		},
		{
			template: "a{b,c}{d,e}",
			want: NewTokenStream([]Token{
				{Kind: TextToken, Text: "a", Start: 0, End: 1},
				{Kind: PlaceholderToken, Text: "{b,c}", Word: "b", Particle: "c", Start: 1, End: 6},
				{Kind: PlaceholderToken, Text: "{d,e}", Word: "d", Particle: "e", Start: 6, End: 11},
			}),
		},
		{
			template: "{{x}} {a, b}",
			want: NewTokenStream([]Token{
				{Kind: TextToken, Text: "{x} ", Start: 0, End: 6},
				{Kind: PlaceholderToken, Text: "{a, b}", Word: "a", Particle: "b", Start: 6, End: 12},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("template = %q", tt.template), func(t *testing.T) {
			got, err := Scan(tt.template)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff: (-want +got)\n%s", diff)
			}
		})
	}
}

func TestScan_errors(t *testing.T) {
	tests := []struct {
		template string
		span     string
		reason   string
	}{
		{template: "{word particle}", span: "{word particle}", reason: "missing comma between word and particle"},
		{template: "앞 {집, 은", span: "{집, 은", reason: "unclosed placeholder"},
		{template: "앞 {집", span: "{집", reason: "unclosed placeholder"},
		{template: "닫힘} 뒤", span: "}", reason: "unmatched closing brace"},
		{template: "{집, {나, 은}}", span: "{집, {", reason: "nested placeholder"},
		{template: "{{집, 은}", span: "}", reason: "unmatched closing brace"},
		{template: "{ , 은}", span: "{ , 은}", reason: "empty word"},
		{template: "{집, }", span: "{집, }", reason: "empty particle"},
		{template: "{집, 은, 는}", span: "{집, 은,", reason: "more than one comma"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("template = %q", tt.template), func(t *testing.T) {
			_, err := Scan(tt.template)
			if !errors.Is(err, ErrTemplateSyntax) {
				t.Fatalf("Scan() error = %v, want ErrTemplateSyntax", err)
			}
			var tse *TemplateSyntaxError
			if !errors.As(err, &tse) {
				t.Fatalf("Scan() error = %#v", err)
			}
			if tse.Span() != tt.span || tse.Reason != tt.reason {
				t.Errorf("Scan() error span = %q reason = %q, want %q %q", tse.Span(), tse.Reason, tt.span, tt.reason)
			}
		})
	}
}

func TestModifySentence(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{template: "{한국어, 은} 좋다", want: "한국어는 좋다"},
		{template: "{커피, 을} 좋아해요", want: "커피를 좋아해요"},
		{
			template: "{한국어, 은} 정말 좋은 언어입니다. {커피, 을} 정말 좋아해요",
			want:     "한국어는 정말 좋은 언어입니다. 커피를 정말 좋아해요",
		},
		{template: "{토씨캣, (은)는} 편해요", want: "토씨캣은 편해요"},
		{template: "{google, 로} 검색", want: "google(으)로 검색"},
		{template: "자리표시자 없음", want: "자리표시자 없음"},
		{template: "", want: ""},
		{template: "{{중괄호}} {집, 로}", want: "{중괄호} 집으로"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("template = %q", tt.template), func(t *testing.T) {
			got, err := ModifySentence(tt.template)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ModifySentence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifySentence_errors(t *testing.T) {
	tests := []struct {
		template string
		want     error
	}{
		{template: "{word particle}", want: ErrTemplateSyntax},
		{template: "{집, XYZ} 좋다", want: ErrUnknownParticle},
		{template: "{!!!, 은} 좋다", want: ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("template = %q", tt.template), func(t *testing.T) {
			got, err := ModifySentence(tt.template)
			if !errors.Is(err, tt.want) {
				t.Errorf("ModifySentence() error = %v, want %v", err, tt.want)
			}
			if got != "" {
				t.Errorf("ModifySentence() = %q, want no partial output", got)
			}
		})
	}
}

func TestTokenStream_Placeholders(t *testing.T) {
	ts, err := Scan("{집, 로} 가는 {나무, 이} 있다")
	if err != nil {
		t.Fatal(err)
	}
	var words []string
	for _, p := range ts.Placeholders() {
		words = append(words, p.Word+"/"+p.Particle)
	}
	if diff := cmp.Diff([]string{"집/로", "나무/이"}, words); diff != "" {
		t.Errorf("Diff: (-want +got)\n%s", diff)
	}
}
