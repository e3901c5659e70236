package quickentry

import (
	"regexp"
	"strings"
)

// CategoryOther is returned when no keyword matches.
const CategoryOther = "Other"

// CategoryRule maps a keyword to a category label. A keyword ending in "*" matches
// any word starting with it ("super*" matches "super" and "supermercado"); any
// other keyword must match whole words.
type CategoryRule struct {
	Keyword  string
	Category string
}

// CategoryTable is an ordered, immutable keyword table. The first rule whose
// keyword appears in the text wins.
type CategoryTable struct {
	rules    []CategoryRule
	patterns []*regexp.Regexp
}

// NewCategoryTable compiles rules in the given order.
func NewCategoryTable(rules ...CategoryRule) CategoryTable {
	t := CategoryTable{
		rules:    make([]CategoryRule, 0, len(rules)),
		patterns: make([]*regexp.Regexp, 0, len(rules)),
	}
	for _, r := range rules {
		keyword := Normalize(strings.TrimSpace(r.Keyword))
		if keyword == "" || keyword == "*" {
			continue
		}
		t.rules = append(t.rules, r)
		t.patterns = append(t.patterns, keywordPattern(keyword))
	}
	return t
}

// Match returns the category of the first rule found in normalized text.
func (t CategoryTable) Match(normalized string) string {
	for i, re := range t.patterns {
		if re.MatchString(normalized) {
			return t.rules[i].Category
		}
	}
	return CategoryOther
}

// Rules returns a copy of the table's rules in match order.
func (t CategoryTable) Rules() []CategoryRule {
	out := make([]CategoryRule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len reports the number of rules.
func (t CategoryTable) Len() int {
	return len(t.rules)
}

func keywordPattern(keyword string) *regexp.Regexp {
	if prefix, ok := strings.CutSuffix(keyword, "*"); ok {
		return regexp.MustCompile(`\b` + regexp.QuoteMeta(prefix))
	}
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// DefaultCategoryTable returns the built-in table. More specific keywords come
// before broader ones.
func DefaultCategoryTable() CategoryTable {
	return NewCategoryTable(
		// Groceries
		CategoryRule{"super*", "Supermercado"},
		CategoryRule{"verduleria", "Supermercado"},
		CategoryRule{"carniceria", "Supermercado"},
		CategoryRule{"almacen", "Supermercado"},
		CategoryRule{"chino", "Supermercado"},
		CategoryRule{"dietetica", "Supermercado"},

		// Health
		CategoryRule{"farmacia", "Salud"},
		CategoryRule{"obra social", "Salud"},
		CategoryRule{"prepaga", "Salud"},
		CategoryRule{"medico", "Salud"},
		CategoryRule{"dentista", "Salud"},
		CategoryRule{"remedio*", "Salud"},

		// Transport
		CategoryRule{"nafta", "Transporte"},
		CategoryRule{"combustible", "Transporte"},
		CategoryRule{"peaje", "Transporte"},
		CategoryRule{"estacionamiento", "Transporte"},
		CategoryRule{"uber", "Transporte"},
		CategoryRule{"taxi", "Transporte"},
		CategoryRule{"colectivo", "Transporte"},
		CategoryRule{"subte", "Transporte"},
		CategoryRule{"tren", "Transporte"},
		CategoryRule{"sube", "Transporte"},

		// Housing
		CategoryRule{"alquiler", "Vivienda"},
		CategoryRule{"expensas", "Vivienda"},

		// Utilities
		CategoryRule{"luz", "Servicios"},
		CategoryRule{"gas", "Servicios"},
		CategoryRule{"agua", "Servicios"},
		CategoryRule{"internet", "Servicios"},
		CategoryRule{"telefono", "Servicios"},
		CategoryRule{"celular", "Servicios"},
		CategoryRule{"abl", "Servicios"},

		// Eating out
		CategoryRule{"restaurant*", "Comida"},
		CategoryRule{"resto", "Comida"},
		CategoryRule{"pedidos ya", "Comida"},
		CategoryRule{"rappi", "Comida"},
		CategoryRule{"delivery", "Comida"},
		CategoryRule{"pizza*", "Comida"},
		CategoryRule{"cafe", "Comida"},
		CategoryRule{"almuerzo", "Comida"},
		CategoryRule{"cena", "Comida"},
		CategoryRule{"comida", "Comida"},

		// Entertainment
		CategoryRule{"netflix", "Entretenimiento"},
		CategoryRule{"spotify", "Entretenimiento"},
		CategoryRule{"cine", "Entretenimiento"},
		CategoryRule{"teatro", "Entretenimiento"},
		CategoryRule{"recital", "Entretenimiento"},
		CategoryRule{"salida", "Entretenimiento"},

		// Clothing
		CategoryRule{"ropa", "Ropa"},
		CategoryRule{"zapatilla*", "Ropa"},
		CategoryRule{"remera*", "Ropa"},

		// Education
		CategoryRule{"colegio", "Educación"},
		CategoryRule{"facultad", "Educación"},
		CategoryRule{"curso", "Educación"},
		CategoryRule{"libro*", "Educación"},

		// Income
		CategoryRule{"sueldo", "Sueldo"},
		CategoryRule{"salario", "Sueldo"},
		CategoryRule{"aguinaldo", "Sueldo"},
		CategoryRule{"honorario*", "Trabajo"},
		CategoryRule{"factur*", "Trabajo"},
		CategoryRule{"cliente", "Trabajo"},

		CategoryRule{"tarjeta", "Tarjeta"},
		CategoryRule{"regalo*", "Regalos"},
	)
}
