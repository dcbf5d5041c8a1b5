package tossicat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const testConfig = `
max_word_length: 20
mappings:
  "%": 퍼센트
readings:
  google: 구글
  apple: 애플
vowel_like_finals:
  wa: [ㄹ]
mysql:
  user: root
  password: password
  addr: 127.0.0.1
  port: "3306"
  db: tossicat
cache_ttl: 30s
`

func TestParseConfig(t *testing.T) {
	got, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		MaxWordLength:   20,
		Mappings:        map[string]string{"%": "퍼센트"},
		Readings:        map[string]string{"google": "구글", "apple": "애플"},
		VowelLikeFinals: map[string][]string{"wa": {"ㄹ"}},
		MySQL:           NewDBConfig("root", "password", "127.0.0.1", "3306", "tossicat"),
		CacheTTL:        30 * time.Second,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff: (-want +got)\n%s", diff)
	}
}

func TestParseConfig_defaults(t *testing.T) {
	got, err := ParseConfig([]byte("japanese: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Japanese = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff: (-want +got)\n%s", diff)
	}
}

func TestParseConfig_invalid(t *testing.T) {
	if _, err := ParseConfig([]byte("max_word_length: [")); err == nil {
		t.Error("ParseConfig() error = nil, want an error")
	}
	if _, err := ParseConfig([]byte("cache_ttl: soon")); err == nil {
		t.Error("ParseConfig() error = nil, want an error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tossicat.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxWordLength != 20 {
		t.Errorf("MaxWordLength = %v, want 20", c.MaxWordLength)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig() error = %v, want os.ErrNotExist", err)
	}
}

func TestConfig_Table(t *testing.T) {
	c := DefaultConfig()
	c.VowelLikeFinals = map[string][]string{"wa": {"ㄹ"}, "eul": {"ㄴ"}}
	table, err := c.Table()
	if err != nil {
		t.Fatal(err)
	}
	e := New(WithTable(table))
	for _, tt := range []struct {
		word, particle, want string
	}{
		{word: "서울", particle: "와", want: "서울와"},
		{word: "산", particle: "을", want: "산를"},
		{word: "집", particle: "와", want: "집과"},
		{word: "서울", particle: "로", want: "서울로"},
	} {
		got, err := e.Postfix(tt.word, tt.particle)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Postfix(%q, %q) = %v, want %v", tt.word, tt.particle, got, tt.want)
		}
	}

	// the default table is untouched
	if got, _ := Postfix("서울", "와"); got != "서울과" {
		t.Errorf("Postfix() = %v, want 서울과", got)
	}
}

func TestConfig_Table_errors(t *testing.T) {
	cases := []map[string][]string{
		{"unknown": {"ㄹ"}},
		{"invariant": {"ㄹ"}},
		{"wa": {"ㄹㅁ"}},
		{"wa": {"ㅏ"}},
		{"wa": {""}},
	}
	for _, overrides := range cases {
		c := DefaultConfig()
		c.VowelLikeFinals = overrides
		if _, err := c.Table(); err == nil {
			t.Errorf("Table() with %v error = nil, want an error", overrides)
		}
	}
}

func TestNewFromConfig(t *testing.T) {
	c, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	c.MySQL = nil

	e, closer, err := NewFromConfig(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer closer()

	for _, tt := range []struct {
		word, particle, want string
	}{
		{word: "google", particle: "을", want: "google을"},
		{word: "Apple", particle: "은", want: "Apple은"},
		{word: "naver", particle: "은", want: "naver(은)는"},
		{word: "100%", particle: "를", want: "100%를"},
		{word: "서울", particle: "와", want: "서울와"},
	} {
		got, err := e.Postfix(tt.word, tt.particle)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Postfix(%q, %q) = %v, want %v", tt.word, tt.particle, got, tt.want)
		}
	}

	if _, err := e.Postfix(strings.Repeat("가", 21), "은"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Postfix() error = %v, want ErrInvalidInput", err)
	}
}

func TestNewFromConfig_errors(t *testing.T) {
	c := DefaultConfig()
	c.Readings = map[string]string{"google": "google"}
	if _, _, err := NewFromConfig(c, nil); err == nil {
		t.Error("NewFromConfig() error = nil, want an error")
	}

	c = DefaultConfig()
	c.VowelLikeFinals = map[string][]string{"nope": {"ㄹ"}}
	if _, _, err := NewFromConfig(c, nil); err == nil {
		t.Error("NewFromConfig() error = nil, want an error")
	}
}
