package english

import (
	"math"
	"time"
)

type timeKind int

const (
	// hour seen, separator not yet read
	timeUnknown timeKind = iota
	// hour and ':' consumed
	timeFormal
	// hour followed by am or pm
	timeAmPm
	// hour and minute consumed, an am/pm word may follow
	timePreParsed
)

// pendingTime is the part of a time the date grammar consumed while looking ahead.
type pendingTime struct {
	kind   timeKind
	hour   int
	minute int
	pm     bool
}

type parser struct {
	lex       *lexer
	dialect   Dialect
	direct    Direction
	maybeTime *pendingTime
}

func newParser(text string, dialect Dialect) *parser {
	return &parser{
		lex:     newLexer(text),
		dialect: dialect,
		direct:  Here,
	}
}

func (p *parser) parse() (DateTimeSpec, error) {
	date, err := p.parseDate()
	if err != nil {
		return DateTimeSpec{}, err
	}

	tm, err := p.parseTime()
	if err != nil {
		return DateTimeSpec{}, err
	}

	if date == nil && tm == nil {
		return DateTimeSpec{}, errorf("no date or time found")
	}

	return DateTimeSpec{Date: date, Time: tm}, nil
}

func dateShortcut(name string) (int, bool) {
	switch name {
	case "now", "today", "tdy":
		return 0, true
	case "yesterday", "yday", "ytd":
		return -1, true
	case "tomorrow", "tmr", "tmrw":
		return 1, true
	}
	return 0, false
}

func isAmPm(name string) bool { return name == "am" || name == "pm" }

func isOrdinal(name string) bool {
	return name == "st" || name == "nd" || name == "rd" || name == "th"
}

func isUTC(name string) bool { return name == "z" || name == "utc" || name == "gmt" }

func (p *parser) parseDate() (DateSpec, error) {
	t, ok := p.lex.next()
	if !ok {
		return nil, errorf("empty date string")
	}

	var negative bool
	if sign := t; sign.isChar('-') || sign.isChar('+') {
		negative = sign.Char == '-'
		if t, ok = p.lex.next(); !ok {
			return nil, errorf("nothing after '%c'", sign.Char)
		}
	}

	if name := t.word(); name != "" {
		if offset, ok := dateShortcut(name); ok {
			return Relative{Amount: float64(offset), Unit: Day}, nil
		}

		if d, ok := directionFromName(name); ok {
			p.direct = d
			if t, ok = p.lex.next(); !ok {
				return nil, errorf("nothing after last/next")
			}
		}
	}

	switch t.Kind {
	case TokenIden:
		return p.namedDate(t.word())
	case TokenInt:
		return p.numericDate(t, negative)
	}

	return nil, errorf("unexpected token %s", t)
}

// namedDate handles a leading weekday or month name. A month may be followed by
// "day", "day, year" or "day year".
func (p *parser) namedDate(name string) (DateSpec, error) {
	by, ok := byNameFromName(name, p.direct)
	if !ok {
		return nil, errorf("expected week day or month name, found %q", name)
	}

	if !by.IsMonth() || p.lex.peek().Kind != TokenInt {
		return FromName{Name: by}, nil
	}

	day, err := p.lex.getInt()
	if err != nil {
		return nil, err
	}
	p.skipOrdinal()

	if p.lex.peekChar() == ',' {
		p.lex.get()
		year, err := p.lex.getInt()
		if err != nil {
			return nil, err
		}
		p.skipComma()
		return Absolute{Year: year, Month: by.Month, Day: day}, nil
	}

	return p.dayMonth(day, by.Month)
}

// dayMonth finishes "day month" with an optional year. An integer directly followed by
// ':', '.' or am/pm is an hour rather than a year.
func (p *parser) dayMonth(day int, month time.Month) (DateSpec, error) {
	t := p.lex.peek()
	if t.Kind != TokenInt {
		return FromName{Name: byNameFromDayMonth(day, month, p.direct)}, nil
	}

	p.lex.get()
	n, err := t.int()
	if err != nil {
		return nil, err
	}

	if p.maybeTime == nil && p.startsTime() {
		p.maybeTime = &pendingTime{kind: timeUnknown, hour: n}
		return FromName{Name: byNameFromDayMonth(day, month, p.direct)}, nil
	}

	p.skipComma()
	return Absolute{Year: n, Month: month, Day: day}, nil
}

func (p *parser) startsTime() bool {
	t := p.lex.peek()
	return t.isChar(':') || t.isChar('.') || isAmPm(t.word())
}

func (p *parser) skipComma() {
	if p.lex.peek().isChar(',') {
		p.lex.get()
	}
}

func (p *parser) skipOrdinal() {
	if isOrdinal(p.lex.peek().word()) {
		p.lex.get()
	}
}

func (p *parser) numericDate(t Token, negative bool) (DateSpec, error) {
	n, err := t.int()
	if err != nil {
		return nil, err
	}

	next := p.lex.get()
	switch next.Kind {
	case TokenEnd:
		// a lone number is a year
		return Absolute{Year: n, Month: time.January, Day: 1}, nil
	case TokenIden:
		return p.numberThenWord(n, next.word(), negative)
	case TokenChar:
		switch next.Char {
		case '-':
			return p.isoDate(n)
		case '/':
			return p.slashDate(n)
		case ':':
			p.maybeTime = &pendingTime{kind: timeFormal, hour: n}
			return nil, nil
		case '.':
			return p.dottedNumber(n, next, negative)
		}
		return nil, errorf("unexpected char %q", next.Char)
	}

	return nil, errorf("unexpected token %s", next)
}

func (p *parser) numberThenWord(n int, name string, negative bool) (DateSpec, error) {
	if isOrdinal(name) {
		if p.lex.peek().word() == "of" {
			p.lex.get()
		}
		name = p.lex.get().word()
		if month, ok := monthName(name); ok {
			return p.dayMonth(n, month)
		}
		return nil, errorf("expected month name after day %d, found %q", n, name)
	}

	if month, ok := monthName(name); ok {
		return p.dayMonth(n, month)
	}

	if unit, ok := timeUnit(name); ok {
		return p.relative(float64(n), unit, negative), nil
	}

	if isAmPm(name) {
		p.maybeTime = &pendingTime{kind: timeAmPm, hour: n, pm: name == "pm"}
		return p.dateAfterTime()
	}

	return nil, errorf("expected month or time unit after %d, found %q", n, name)
}

// relative builds a skip of amount units. A leading '-' or a trailing "ago" negates it;
// both together still give a single negation.
func (p *parser) relative(amount float64, unit Unit, negative bool) Relative {
	if p.lex.peek().word() == "ago" {
		p.lex.get()
		negative = true
	} else if !negative && p.lex.peek().Kind == TokenInt {
		if hour, err := p.lex.get().int(); err == nil {
			p.maybeTime = &pendingTime{kind: timeUnknown, hour: hour}
		}
	}

	if negative {
		amount = -amount
	}

	return Relative{Amount: amount, Unit: unit}
}

// dateAfterTime reads an optional date following a leading "7pm".
func (p *parser) dateAfterTime() (DateSpec, error) {
	name := p.lex.get().word()
	if name == "" {
		return nil, nil
	}

	if name == "on" {
		name = p.lex.get().word()
	}

	if offset, ok := dateShortcut(name); ok {
		return Relative{Amount: float64(offset), Unit: Day}, nil
	}

	if d, ok := directionFromName(name); ok {
		p.direct = d
		name = p.lex.get().word()
	}

	if _, ok := byNameFromName(name, p.direct); ok {
		return p.namedDate(name)
	}

	return nil, nil
}

func (p *parser) isoDate(year int) (DateSpec, error) {
	month, err := p.lex.getInt()
	if err != nil {
		return nil, err
	}

	if _, err := p.lex.getCharMatching('-'); err != nil {
		return nil, err
	}

	day, err := p.lex.getInt()
	if err != nil {
		return nil, err
	}

	return absolute(year, month, day)
}

func (p *parser) slashDate(first int) (DateSpec, error) {
	second, err := p.lex.getInt()
	if err != nil {
		return nil, err
	}

	day, month := first, second
	if p.dialect == US {
		day, month = second, first
	}

	if p.lex.peekChar() != '/' {
		if month < 1 || month > 12 {
			return nil, errorf("month %d out of range", month)
		}
		return FromName{Name: byNameFromDayMonth(day, time.Month(month), p.direct)}, nil
	}

	p.lex.get()
	year, err := p.lex.getInt()
	if err != nil {
		return nil, err
	}

	return absolute(pivotYear(year), month, day)
}

// dottedNumber handles "15. Jun", "1.5 hours" and "11.20".
func (p *parser) dottedNumber(n int, dot Token, negative bool) (DateSpec, error) {
	t := p.lex.get()
	switch t.Kind {
	case TokenIden:
		month, ok := monthName(t.word())
		if !ok {
			return nil, errorf("expected month name after day with dot, found %q", t.Text)
		}
		return p.dayMonth(n, month)

	case TokenInt:
		frac, err := t.int()
		if err != nil {
			return nil, err
		}

		if unit, ok := timeUnit(p.lex.peek().word()); ok {
			p.lex.get()
			amount := float64(n) + float64(frac)/math.Pow10(len(t.Text))
			return p.relative(amount, unit, negative), nil
		}

		p.maybeTime = &pendingTime{kind: timePreParsed, hour: n, minute: frac}
		return nil, nil
	}

	return nil, errorf("unexpected token %s after %d%s", t, n, dot.Text)
}

func absolute(year, month, day int) (DateSpec, error) {
	if month < 1 || month > 12 {
		return nil, errorf("month %d out of range", month)
	}
	return Absolute{Year: year, Month: time.Month(month), Day: day}, nil
}
