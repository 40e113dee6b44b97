package locale

import "golang.org/x/text/language"

// Predefined punctuation facets for common locales. Install one explicitly,
// or let lazy default construction pick it from the locale name.

// NumPunctEnUS returns US English numeric punctuation (1,234.56).
func NumPunctEnUS() *NumPunct {
	return NewNumPunct()
}

// NumPunctDeDE returns German numeric punctuation (1.234,56).
func NumPunctDeDE() *NumPunct {
	return NewNumPunct(WithDecimalPoint(','), WithThousandsSep('.'), WithBoolNames("wahr", "falsch"))
}

// NumPunctFrFR returns French numeric punctuation (1 234,56).
func NumPunctFrFR() *NumPunct {
	return NewNumPunct(WithDecimalPoint(','), WithThousandsSep(' '), WithBoolNames("vrai", "faux"))
}

// NumPunctEsES returns Spanish numeric punctuation (1.234,56).
func NumPunctEsES() *NumPunct {
	return NewNumPunct(WithDecimalPoint(','), WithThousandsSep('.'), WithBoolNames("verdadero", "falso"))
}

// NumPunctPtBR returns Brazilian Portuguese numeric punctuation (1.234,56).
func NumPunctPtBR() *NumPunct {
	return NewNumPunct(WithDecimalPoint(','), WithThousandsSep('.'), WithBoolNames("verdadeiro", "falso"))
}

// NumPunctPlPL returns Polish numeric punctuation (1 234,56).
func NumPunctPlPL() *NumPunct {
	return NewNumPunct(WithDecimalPoint(','), WithThousandsSep(' '))
}

// NumPunctRuRU returns Russian numeric punctuation (1 234,56).
func NumPunctRuRU() *NumPunct {
	return NewNumPunct(WithDecimalPoint(','), WithThousandsSep(' '))
}

// MoneyPunctEnUS returns US dollar formatting: "$1,234.56", "-$1,234.56".
func MoneyPunctEnUS() *MoneyPunct {
	return NewMoneyPunct()
}

// MoneyPunctEnGB returns pound sterling formatting: "£1,234.56".
func MoneyPunctEnGB() *MoneyPunct {
	return NewMoneyPunct(WithCurrencySymbol("£"))
}

// MoneyPunctDeDE returns euro formatting in the German style:
// "1.234,56 €", negative "-1.234,56 €".
func MoneyPunctDeDE() *MoneyPunct {
	return NewMoneyPunct(
		WithMoneyDecimalPoint(','),
		WithMoneyThousandsSep('.'),
		WithCurrencySymbol("€"),
		WithMoneyFormats(
			MoneyPattern{MoneySign, MoneyValue, MoneySpace, MoneySymbol},
			MoneyPattern{MoneySign, MoneyValue, MoneySpace, MoneySymbol},
		),
	)
}

// MoneyPunctFrFR returns euro formatting in the French style: "1 234,56 €".
func MoneyPunctFrFR() *MoneyPunct {
	return NewMoneyPunct(
		WithMoneyDecimalPoint(','),
		WithMoneyThousandsSep(' '),
		WithCurrencySymbol("€"),
		WithMoneyFormats(
			MoneyPattern{MoneySign, MoneyValue, MoneySpace, MoneySymbol},
			MoneyPattern{MoneySign, MoneyValue, MoneySpace, MoneySymbol},
		),
	)
}

// MoneyPunctJaJP returns yen formatting: "¥1,234" with no fraction digits.
func MoneyPunctJaJP() *MoneyPunct {
	return NewMoneyPunct(WithCurrencySymbol("¥"), WithFracDigits(0))
}

// TimeGetDeDE returns a calendar parser with German names and day-first
// dates.
func TimeGetDeDE() *TimeGet {
	return NewTimeGet(
		WithDateOrder(DMY),
		WithWeekdayNames(
			[]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
			[]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		),
		WithMonthNames(
			[]string{
				"Januar", "Februar", "März", "April", "Mai", "Juni",
				"Juli", "August", "September", "Oktober", "November", "Dezember",
			},
			[]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		),
	)
}

// TimeGetFrFR returns a calendar parser with French names and day-first
// dates.
func TimeGetFrFR() *TimeGet {
	return NewTimeGet(
		WithDateOrder(DMY),
		WithWeekdayNames(
			[]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
			[]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
		),
		WithMonthNames(
			[]string{
				"janvier", "février", "mars", "avril", "mai", "juin",
				"juillet", "août", "septembre", "octobre", "novembre", "décembre",
			},
			[]string{"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
		),
	)
}

// newDefaultFacet constructs the default facet for a category, picking
// presets appropriate for the locale's language where one exists.
func newDefaultFacet(c Category, d *localeData) Facet {
	switch c {
	case CategoryCtype:
		return NewCtype()
	case CategoryNumPunct:
		return defaultNumPunct(d.tag)
	case CategoryNumGet:
		return NewNumGet()
	case CategoryNumPut:
		return NewNumPut()
	case CategoryCollate:
		if d.tag == language.Und {
			return NewCollate()
		}
		return NewCollate(WithCollationTag(d.tag))
	case CategoryTimeGet:
		return defaultTimeGet(d.tag)
	case CategoryTimePut:
		return defaultTimePut(d.tag)
	case CategoryMoneyPunct:
		return defaultMoneyPunct(d.tag)
	case CategoryMoneyGet:
		return NewMoneyGet()
	case CategoryMoneyPut:
		return NewMoneyPut()
	case CategoryMessages:
		return NewMessages()
	default:
		panic("locale: no default facet for category " + c.String())
	}
}

func baseLang(tag language.Tag) string {
	if tag == language.Und {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

func defaultNumPunct(tag language.Tag) *NumPunct {
	switch baseLang(tag) {
	case "de":
		return NumPunctDeDE()
	case "es":
		return NumPunctEsES()
	case "pt":
		return NumPunctPtBR()
	case "fr":
		return NumPunctFrFR()
	case "pl":
		return NumPunctPlPL()
	case "ru", "uk":
		return NumPunctRuRU()
	default:
		return NumPunctEnUS()
	}
}

func defaultMoneyPunct(tag language.Tag) *MoneyPunct {
	switch baseLang(tag) {
	case "de":
		return MoneyPunctDeDE()
	case "fr":
		return MoneyPunctFrFR()
	case "ja":
		return MoneyPunctJaJP()
	default:
		region, _ := tag.Region()
		if region.String() == "GB" {
			return MoneyPunctEnGB()
		}
		return MoneyPunctEnUS()
	}
}

func defaultTimeGet(tag language.Tag) *TimeGet {
	switch baseLang(tag) {
	case "de":
		return TimeGetDeDE()
	case "fr":
		return TimeGetFrFR()
	default:
		// Names stay English; only the component order adapts.
		return NewTimeGet(WithDateOrder(dateOrderFor(baseLang(tag))))
	}
}

func defaultTimePut(tag language.Tag) *TimePut {
	switch baseLang(tag) {
	case "de", "pl", "ru", "uk":
		return NewTimePut(
			WithDateLayout("02.01.2006"),
			WithTimeLayout("15:04:05"),
			WithDateTimeLayout("02.01.2006 15:04:05"),
		)
	case "fr", "es", "pt", "it":
		return NewTimePut(
			WithDateLayout("02/01/2006"),
			WithTimeLayout("15:04:05"),
			WithDateTimeLayout("02/01/2006 15:04:05"),
		)
	case "ja", "zh", "ko":
		return NewTimePut(
			WithDateLayout("2006/01/02"),
			WithTimeLayout("15:04:05"),
			WithDateTimeLayout("2006/01/02 15:04:05"),
		)
	default:
		return NewTimePut()
	}
}

// dateOrderFor returns the numeric date order common for a language.
func dateOrderFor(lang string) DateOrder {
	switch lang {
	case "de", "fr", "es", "pt", "it", "pl", "ru", "uk", "nl":
		return DMY
	case "ja", "zh", "ko":
		return YMD
	default:
		return MDY
	}
}
