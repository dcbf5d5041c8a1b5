package tossicat

import (
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	c := mysql.NewConfig()
	c.User = dbConfig.User
	c.Passwd = dbConfig.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(dbConfig.Addr, dbConfig.Port)
	c.DBName = dbConfig.DB
	db, err := sqlx.Open("mysql", c.FormatDSN())
	if err != nil {
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	DB       string `yaml:"db"`
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

// Reading is a row of the readings table. Words are stored lower-cased.
type Reading struct {
	Word    string `db:"word"`
	Reading string `db:"reading"`
}

// RdbReader reads Hangul readings of foreign words from the readings table:
//
//	create table readings (
//		word    varchar(255) not null primary key,
//		reading varchar(255) not null
//	);
type RdbReader struct {
	DB *sqlx.DB
}

func NewRdbReader(db *sqlx.DB) *RdbReader {
	return &RdbReader{
		DB: db,
	}
}

// AddReading inserts or replaces the reading of word.
func (s *RdbReader) AddReading(word, reading string) error {
	if _, ok := finalOfReading(reading); !ok {
		return fmt.Errorf("reading %q of %q has no Hangul syllable", reading, word)
	}
	_, err := s.DB.NamedExec(
		`insert into readings (word, reading)
		values (:word, :reading)
		on duplicate key update reading = :reading`,
		Reading{Word: strings.ToLower(word), Reading: reading})
	return err
}

// GetReading returns the stored reading of word, ok=false when there is none.
func (s *RdbReader) GetReading(word string) (Reading, bool, error) {
	var r Reading
	if err := s.DB.Get(&r, `select word, reading from readings where word = ?`, strings.ToLower(word)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reading{}, false, nil
		}
		return Reading{}, false, err
	}
	return r, true, nil
}

func (s *RdbReader) FinalSound(word string) (rune, bool, error) {
	r, ok, err := s.GetReading(word)
	if err != nil || !ok {
		return 0, false, err
	}
	final, ok := finalOfReading(r.Reading)
	return final, ok, nil
}
