package tossicat

import (
	"fmt"
	"os"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/kotaroooo0/tossicat/morphology"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config describes an Engine in YAML:
//
//	max_word_length: 50
//	mappings:
//	  "%": 퍼센트
//	readings:
//	  google: 구글
//	vowel_like_finals:
//	  ro: [ㄹ]
//	japanese: true
//	mysql:
//	  user: root
//	  password: password
//	  addr: 127.0.0.1
//	  port: "3306"
//	  db: tossicat
//	cache_ttl: 10m
type Config struct {
	MaxWordLength   int                 `yaml:"max_word_length"`
	Mappings        map[string]string   `yaml:"mappings,omitempty"`
	Readings        map[string]string   `yaml:"readings,omitempty"`
	VowelLikeFinals map[string][]string `yaml:"vowel_like_finals,omitempty"`
	Japanese        bool                `yaml:"japanese"`
	MySQL           *DBConfig           `yaml:"mysql,omitempty"`
	CacheTTL        time.Duration       `yaml:"cache_ttl"`
}

func DefaultConfig() Config {
	return Config{
		MaxWordLength: DefaultMaxWordLength,
		CacheTTL:      10 * time.Minute,
	}
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Table applies the vowel-like final overrides to the default table.
func (c Config) Table() (Table, error) {
	t := DefaultTable()
	names := make([]string, 0, len(c.VowelLikeFinals))
	for name := range c.VowelLikeFinals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, ok := ParseFamily(name)
		if !ok || f == Invariant {
			return Table{}, fmt.Errorf("vowel_like_finals: unknown family %q", name)
		}
		for _, jamo := range c.VowelLikeFinals[name] {
			r, size := utf8.DecodeRuneInString(jamo)
			if size != len(jamo) || r == utf8.RuneError {
				return Table{}, fmt.Errorf("vowel_like_finals.%s: %q is not a single jamo", name, jamo)
			}
			var err error
			if t, err = t.WithVowelLikeFinal(f, r); err != nil {
				return Table{}, fmt.Errorf("vowel_like_finals.%s: %w", name, err)
			}
		}
	}
	return t, nil
}

// NewFromConfig builds an Engine. Readers are consulted in the order
// readings, mysql, japanese. The returned close func releases the database.
func NewFromConfig(c Config, logger *zap.Logger) (*Engine, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	table, err := c.Table()
	if err != nil {
		return nil, nil, err
	}
	opts := []Option{
		WithTable(table),
		WithMaxWordLength(c.MaxWordLength),
		WithLogger(logger),
	}
	if len(c.Mappings) > 0 {
		opts = append(opts, WithCharFilters(NewMappingCharFilter(c.Mappings)))
	}

	closer := func() error { return nil }
	var readers []Reader
	if len(c.Readings) > 0 {
		r, err := NewMapReader(c.Readings)
		if err != nil {
			return nil, nil, fmt.Errorf("readings: %w", err)
		}
		readers = append(readers, r)
	}
	if c.MySQL != nil {
		db, err := NewDBClient(c.MySQL)
		if err != nil {
			return nil, nil, fmt.Errorf("mysql: %w", err)
		}
		closer = db.Close
		var r Reader = NewRdbReader(db)
		if c.CacheTTL > 0 {
			r = NewCachedReader(r, c.CacheTTL, 2*c.CacheTTL)
		}
		readers = append(readers, r)
		logger.Debug("mysql reader enabled", zap.String("addr", c.MySQL.Addr), zap.String("db", c.MySQL.DB))
	}
	if c.Japanese {
		k, err := morphology.NewKagome()
		if err != nil {
			_ = closer()
			return nil, nil, fmt.Errorf("kagome: %w", err)
		}
		readers = append(readers, NewJapaneseReader(k))
	}
	if len(readers) > 0 {
		opts = append(opts, WithReaders(readers...))
	}
	return New(opts...), closer, nil
}
