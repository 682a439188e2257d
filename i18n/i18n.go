// Package i18n carries the embedded translation tables and the
// locale-aware date rendering built on them.
package i18n

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	savemoney "github.com/etnz/savemoney"
)

//go:embed translations/*.yml
var translations embed.FS

// DefaultLanguage is the table every load starts from, so keys missing
// from a partial translation still render in some language.
const DefaultLanguage = savemoney.Indonesian

type table struct {
	Labels map[string]string `yaml:"labels"`
	Days   []string          `yaml:"days"`
	Months []string          `yaml:"months"`
}

// Table is a loaded translation table.
type Table struct {
	lang savemoney.Language
	t    table
}

func loadTable(lang savemoney.Language) (table, error) {
	var t table
	file := fmt.Sprintf("translations/%s.yml", lang)
	b, err := translations.ReadFile(file)
	if err != nil {
		return t, fmt.Errorf("failed to load translation %s: %w", file, err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal translation %s: %w", file, err)
	}
	return t, nil
}

// Load returns the table for the given language, overlaid on top of the
// default language so untranslated labels fall back rather than vanish.
func Load(lang savemoney.Language) (*Table, error) {
	base, err := loadTable(DefaultLanguage)
	if err != nil {
		return nil, err
	}
	if lang != DefaultLanguage {
		over, err := loadTable(lang)
		if err != nil {
			return nil, err
		}
		for k, v := range over.Labels {
			base.Labels[k] = v
		}
		if len(over.Days) == 7 {
			base.Days = over.Days
		}
		if len(over.Months) == 12 {
			base.Months = over.Months
		}
	}
	return &Table{lang: lang, t: base}, nil
}

// Language returns the language this table was loaded for.
func (t *Table) Language() savemoney.Language { return t.lang }

// T returns the label for a key, or the key itself when unknown, so a
// missing entry stays visible instead of rendering blank.
func (t *Table) T(key string) string {
	if v, ok := t.t.Labels[key]; ok {
		return v
	}
	return key
}

// DayName returns the localized weekday name, Sunday first.
func (t *Table) DayName(d savemoney.Date) string {
	return t.t.Days[int(d.Weekday())]
}

// MonthName returns the localized month name.
func (t *Table) MonthName(m time.Month) string {
	return t.t.Months[int(m)-1]
}

// FullDate renders a dated moment as
// "<dayname>, <day> <month> <year> • <HH:MM>".
func (t *Table) FullDate(d savemoney.Date, clock string) string {
	return fmt.Sprintf("%s, %d %s %d • %s", t.DayName(d), d.Day(), t.MonthName(d.Month()), d.Year(), clock)
}

// DateRange renders a period's date range the way the periodic report
// heads its page: a full date for a day, a day span for a week, month
// and year for a month, the bare year otherwise.
func (t *Table) DateRange(p savemoney.Period, r savemoney.Range) string {
	switch p {
	case savemoney.Daily:
		return fmt.Sprintf("%d %s %d", r.From.Day(), t.MonthName(r.From.Month()), r.From.Year())
	case savemoney.Weekly:
		return fmt.Sprintf("%d – %d %s %d", r.From.Day(), r.To.Day(), t.MonthName(r.From.Month()), r.From.Year())
	case savemoney.Monthly:
		return fmt.Sprintf("%s %d", t.MonthName(r.From.Month()), r.From.Year())
	default:
		return fmt.Sprintf("%d", r.From.Year())
	}
}
