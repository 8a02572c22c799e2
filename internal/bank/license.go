package bank

import (
	"fmt"
	"strings"
)

// LicenseClass is a vehicle licensing class a question applies to.
type LicenseClass int

const (
	LicenseA LicenseClass = iota
	LicenseB
	LicenseC1
	LicenseC
	LicenseD
)

// Tag literals as they appear in the metadata line of the answer markup,
// matched byte-for-byte. The B tag uses a Cyrillic В, not a Latin B, and the
// «C1»/«C» literals map to classes C/C1 respectively; both quirks come from
// the source data encoding and must not be normalized.
var licenseTags = []struct {
	literal string
	class   LicenseClass
}{
	{"«A»", LicenseA},
	{"«В»", LicenseB},
	{"«C1»", LicenseC},
	{"«C»", LicenseC1},
	{"«D»", LicenseD},
}

// scanLicenseTags collects the license classes whose tag literal appears in
// the metadata line. Order and repetition in the line are irrelevant; each
// class is reported at most once.
func scanLicenseTags(line string) []LicenseClass {
	classes := make([]LicenseClass, 0, len(licenseTags))
	for _, tag := range licenseTags {
		if strings.Contains(line, tag.literal) {
			classes = append(classes, tag.class)
		}
	}
	return classes
}

func (l LicenseClass) String() string {
	switch l {
	case LicenseA:
		return "A"
	case LicenseB:
		return "B"
	case LicenseC1:
		return "C1"
	case LicenseC:
		return "C"
	case LicenseD:
		return "D"
	default:
		return "?"
	}
}

func (l LicenseClass) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// LicenseClasses lists every class in declaration order.
func LicenseClasses() []LicenseClass {
	return []LicenseClass{LicenseA, LicenseB, LicenseC1, LicenseC, LicenseD}
}

// LicenseClassFromName resolves the plain class name ("A", "B", "C1", "C",
// "D") used in JSON and query parameters. This is the class name, not the
// workbook tag literal.
func LicenseClassFromName(name string) (LicenseClass, error) {
	for _, l := range LicenseClasses() {
		if l.String() == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown license class %q", name)
}
