package english

import "strings"

func (p *parser) parseTime() (*TimeSpec, error) {
	if pt := p.maybeTime; pt != nil {
		p.maybeTime = nil
		return p.finishTime(*pt)
	}

	t := p.lex.get()
	if w := t.word(); w == "t" || w == "at" {
		t = p.lex.get()
	}
	if t.finished() {
		return nil, nil
	}

	hour, err := t.int()
	if err != nil {
		return nil, errorf("expected hour, found %s", t)
	}

	return p.timeAfterHour(hour)
}

func (p *parser) finishTime(pt pendingTime) (*TimeSpec, error) {
	switch pt.kind {
	case timeFormal:
		return p.formalTime(pt.hour)
	case timeAmPm:
		hour, err := amPm(pt.pm, pt.hour)
		if err != nil {
			return nil, err
		}
		return &TimeSpec{Hour: hour}, nil
	case timePreParsed:
		return p.amPmSuffix(pt.hour, pt.minute)
	default:
		return p.timeAfterHour(pt.hour)
	}
}

func (p *parser) timeAfterHour(hour int) (*TimeSpec, error) {
	t := p.lex.get()
	switch {
	case t.isChar(':'):
		return p.formalTime(hour)
	case t.isChar('.'):
		return p.informalTime(hour)
	case t.Kind == TokenIden:
		return hourTime(t.word(), hour)
	case t.Kind == TokenChar:
		return nil, errorf("expected : or ., not %q", t.Char)
	}
	return nil, errorf("expected : or . after hour %d, found %s", hour, t)
}

// formalTime parses the rest of hh:mm[:ss[.frac]] followed by an optional offset,
// zone word or am/pm.
func (p *parser) formalTime(hour int) (*TimeSpec, error) {
	minute, err := p.lex.getInt()
	if err != nil {
		return nil, err
	}

	ts := &TimeSpec{Hour: hour, Minute: minute}

	t := p.lex.get()
	if t.isChar(':') {
		if ts.Second, err = p.lex.getInt(); err != nil {
			return nil, err
		}
		t = p.lex.get()
	}

	if t.isChar('.') {
		frac := p.lex.grabWhile(isDigit)
		if frac == "" {
			return nil, errorf("expected fractional second after '.'")
		}
		ts.Microsecond = fracMicros(frac)
		t = p.lex.get()
	}

	switch {
	case t.isChar('+'), t.isChar('-'):
		offset, err := p.offset(t.Char == '-')
		if err != nil {
			return nil, err
		}
		ts.Offset = &offset
	case t.Kind == TokenChar:
		return nil, errorf("expected +/- before timezone, found %q", t.Char)
	case isUTC(t.word()):
		ts.Offset = new(0)
	case isAmPm(t.word()):
		if ts.Hour, err = amPm(t.word() == "pm", hour); err != nil {
			return nil, err
		}
		if isUTC(p.lex.peek().word()) {
			p.lex.get()
			ts.Offset = new(0)
		}
	}
	// any other trailing word is a connector and is ignored

	return ts, nil
}

// offset reads HH:MM, HHMM or a bare H/HH and returns seconds east of UTC.
func (p *parser) offset(negative bool) (int, error) {
	t := p.lex.get()
	n, err := t.int()
	if err != nil {
		return 0, errorf("expected timezone offset, found %s", t)
	}

	var hours, minutes int
	switch {
	case p.lex.peekChar() == ':':
		p.lex.get()
		hours = n
		if minutes, err = p.lex.getInt(); err != nil {
			return 0, err
		}
	case len(t.Text) <= 2:
		hours = n
	default:
		hours, minutes = n/100, n%100
	}

	if hours > 23 || minutes > 59 {
		return 0, errorf("timezone offset %s out of range", t.Text)
	}

	offset := (hours*60 + minutes) * 60
	if negative {
		offset = -offset
	}
	return offset, nil
}

func (p *parser) informalTime(hour int) (*TimeSpec, error) {
	minute, err := p.lex.getInt()
	if err != nil {
		return nil, err
	}
	return p.amPmSuffix(hour, minute)
}

func (p *parser) amPmSuffix(hour, minute int) (*TimeSpec, error) {
	t := p.lex.get()
	if t.finished() {
		return &TimeSpec{Hour: hour, Minute: minute}, nil
	}

	if !isAmPm(t.word()) {
		return nil, errorf("expected am or pm, found %s", t)
	}

	hour, err := amPm(t.word() == "pm", hour)
	if err != nil {
		return nil, err
	}
	return &TimeSpec{Hour: hour, Minute: minute}, nil
}

func hourTime(name string, hour int) (*TimeSpec, error) {
	if !isAmPm(name) {
		return nil, errorf("expected am or pm, found %q", name)
	}

	hour, err := amPm(name == "pm", hour)
	if err != nil {
		return nil, err
	}
	return &TimeSpec{Hour: hour}, nil
}

// amPm converts a 12-hour clock hour to 24-hour.
func amPm(pm bool, hour int) (int, error) {
	if hour < 1 || hour > 12 {
		return 0, errorf("hour %d out of range for am/pm", hour)
	}
	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}
	return hour, nil
}

// fracMicros scales the digits after a decimal point to microseconds.
func fracMicros(digits string) int {
	if len(digits) > 6 {
		digits = digits[:6]
	} else {
		digits += strings.Repeat("0", 6-len(digits))
	}

	micros := 0
	for _, r := range digits {
		micros = micros*10 + int(r-'0')
	}
	return micros
}
