package locale

// Convenience predicates over the locale's ctype facet. Each is equivalent
// to Use[*Ctype](loc).Is(class, r).

// IsUpper reports whether r is upper case in loc.
func IsUpper(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Upper, r) }

// IsLower reports whether r is lower case in loc.
func IsLower(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Lower, r) }

// IsAlpha reports whether r is alphabetic in loc.
func IsAlpha(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Alpha, r) }

// IsDigit reports whether r is a decimal digit in loc.
func IsDigit(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Digit, r) }

// IsXdigit reports whether r is a hexadecimal digit in loc.
func IsXdigit(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Xdigit, r) }

// IsSpace reports whether r is whitespace in loc.
func IsSpace(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Space, r) }

// IsPrint reports whether r is printable in loc.
func IsPrint(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Print, r) }

// IsGraph reports whether r is graphic (printable and not space) in loc.
func IsGraph(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Graph, r) }

// IsCntrl reports whether r is a control character in loc.
func IsCntrl(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Cntrl, r) }

// IsPunct reports whether r is punctuation or a symbol in loc.
func IsPunct(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Punct, r) }

// IsAlnum reports whether r is alphanumeric in loc.
func IsAlnum(r rune, loc Locale) bool { return Use[*Ctype](loc).Is(Alnum, r) }

// ToUpperRune maps r to upper case using loc's ctype facet.
func ToUpperRune(r rune, loc Locale) rune { return Use[*Ctype](loc).ToUpper(r) }

// ToLowerRune maps r to lower case using loc's ctype facet.
func ToLowerRune(r rune, loc Locale) rune { return Use[*Ctype](loc).ToLower(r) }
