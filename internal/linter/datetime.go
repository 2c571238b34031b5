package linter

import "github.com/gs1ident/gs1syntax/internal/model"

func registerDateTimeLinters() {
	Register("yymmdd", yymmddLinter)
	Register("yymmd0", yymmd00Linter)
	Register("hhmm", hhmmLinter)
	Register("hhmmss", hhmmssLinter)
}

var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// yymmddLinter validates a 6-digit YYMMDD date. Day 01 is the first of the
// month; day 00 is not accepted here (use yymmd0 for AIs whose GS1 General
// Specifications entry permits DD=00 to mean "end of month unspecified").
// The century is not validated (spec.md leaves GCP/century inference out
// of scope for this linter family — it is a display convention, not a
// syntax rule).
func yymmddLinter(value string) *model.LintFailure {
	if len(value) != 6 || !isNumeric(value) {
		return fail(model.ErrComponentCharacterInvalid, 0, len(value))
	}
	month := atoi2(value[2:4])
	if month < 1 || month > 12 {
		return fail(model.ErrIllegalMonth, 2, 2)
	}
	day := atoi2(value[4:6])
	max := daysInMonth[month]
	if day < 1 || day > max {
		return fail(model.ErrIllegalDay, 4, 2)
	}
	return nil
}

// yymmd00Linter is yymmddLinter but also accepts DD == "00".
func yymmd00Linter(value string) *model.LintFailure {
	if len(value) == 6 && value[4:6] == "00" {
		month := atoi2(value[2:4])
		if month < 1 || month > 12 {
			return fail(model.ErrIllegalMonth, 2, 2)
		}
		return nil
	}
	return yymmddLinter(value)
}

func hhmmLinter(value string) *model.LintFailure {
	if len(value) != 4 || !isNumeric(value) {
		return fail(model.ErrComponentCharacterInvalid, 0, len(value))
	}
	hour := atoi2(value[0:2])
	if hour > 23 {
		return fail(model.ErrIllegalHour, 0, 2)
	}
	minute := atoi2(value[2:4])
	if minute > 59 {
		return fail(model.ErrIllegalMinute, 2, 2)
	}
	return nil
}

func hhmmssLinter(value string) *model.LintFailure {
	if len(value) != 6 || !isNumeric(value) {
		return fail(model.ErrComponentCharacterInvalid, 0, len(value))
	}
	hour := atoi2(value[0:2])
	if hour > 23 {
		return fail(model.ErrIllegalHour, 0, 2)
	}
	minute := atoi2(value[2:4])
	if minute > 59 {
		return fail(model.ErrIllegalMinute, 2, 2)
	}
	second := atoi2(value[4:6])
	if second > 60 { // permit a leap second
		return fail(model.ErrIllegalSecond, 4, 2)
	}
	return nil
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
