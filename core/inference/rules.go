// Package inference derives socket families and memory generations from
// structured fields or, failing that, from free-text product names.
//
// Rules are ordered tables; the first rule that yields a value wins. An empty
// result means "unknown" and must never exclude a component.
package inference

import (
	"regexp"
	"strconv"
	"strings"

	"pcbuild/core/types"
)

// rule maps a pattern over the upper-cased name to a value
type rule struct {
	name    string
	pattern *regexp.Regexp
	// guard, if set, must accept the upper-cased name for the rule to run
	guard func(upper string) bool
	// strip, if set, blanks its matches before pattern runs
	strip   *regexp.Regexp
	resolve func(match []string) string
}

func constant(v string) func([]string) string {
	return func([]string) string { return v }
}

func apply(rules []rule, name string) string {
	upper := strings.ToUpper(name)
	for _, r := range rules {
		if r.guard != nil && !r.guard(upper) {
			continue
		}
		text := upper
		if r.strip != nil {
			text = r.strip.ReplaceAllString(upper, " ")
		}
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v := r.resolve(m); v != "" {
			return v
		}
	}
	return ""
}

func mentionsRyzen(upper string) bool {
	return strings.Contains(upper, "RYZEN")
}

func notRyzen(upper string) bool {
	return !mentionsRyzen(upper) && !strings.Contains(upper, "AMD")
}

var (
	xeonE3Pattern  = regexp.MustCompile(`XEON\s*E3-?\s*\d{4}[A-Z]*\s*V([1-6])`)
	coreIPattern   = regexp.MustCompile(`(?:CORE\s*)?I[3579]\s*-\s*(\d{4,5})`)
	ryzenPattern   = regexp.MustCompile(`(?:^|[^0-9])([1357])\d{3}`)
	intelModelBare = regexp.MustCompile(`(?:^|[^0-9])(\d{4,5})`)
	socketToken    = regexp.MustCompile(`LGA\s*\d+`)
)

func xeonE3Socket(m []string) string {
	switch m[1] {
	case "1", "2":
		return "LGA1155"
	case "3", "4":
		return "LGA1150"
	case "5", "6":
		return "LGA1151"
	}
	return ""
}

func coreModelSocket(m []string) string {
	model, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	switch {
	case model >= 12000:
		return "LGA1700"
	case model >= 10000:
		return "LGA1200"
	case model >= 6000:
		return "LGA1151"
	case model >= 4000:
		return "LGA1150"
	case model >= 2000:
		return "LGA1155"
	}
	return ""
}

func ryzenSocket(m []string) string {
	switch m[1] {
	case "7":
		return "AM5"
	case "5", "3", "1":
		return "AM4"
	}
	return ""
}

// cpuSocketRules infer a CPU socket family from its name
var cpuSocketRules = []rule{
	{name: "am5", pattern: regexp.MustCompile(`AM5`), resolve: constant("AM5")},
	{name: "am4", pattern: regexp.MustCompile(`AM4`), resolve: constant("AM4")},
	{name: "lga", pattern: regexp.MustCompile(`LGA\s*(\d+)`), resolve: func(m []string) string { return "LGA" + m[1] }},
	{name: "xeon-e3", pattern: xeonE3Pattern, resolve: xeonE3Socket},
	{name: "core-i", pattern: coreIPattern, resolve: coreModelSocket},
	{name: "digits-lga1700", guard: notRyzen, pattern: regexp.MustCompile(`(?:^|[^0-9])1[234]\d{3}`), resolve: constant("LGA1700")},
	{name: "digits-lga1200", guard: notRyzen, pattern: regexp.MustCompile(`(?:^|[^0-9])1[01]\d{3}`), resolve: constant("LGA1200")},
	{name: "digits-lga1151", guard: notRyzen, pattern: regexp.MustCompile(`(?:^|[^0-9])[6-9]\d{3}`), resolve: constant("LGA1151")},
	{name: "ryzen", guard: mentionsRyzen, pattern: ryzenPattern, resolve: ryzenSocket},
}

func xeonE3Memory(m []string) string {
	switch m[1] {
	case "1", "2", "3", "4":
		return types.DDR3
	case "5", "6":
		return types.DDR4
	}
	return ""
}

func intelModelMemory(m []string) string {
	model, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	if model >= 6000 {
		return types.DDR4
	}
	return ""
}

func ryzenMemory(m []string) string {
	switch m[1] {
	case "7":
		return types.DDR5
	case "5", "3", "1":
		return types.DDR4
	}
	return ""
}

// cpuMemoryRules infer the memory generation a CPU drives
var cpuMemoryRules = []rule{
	{name: "xeon-e3", pattern: xeonE3Pattern, resolve: xeonE3Memory},
	{name: "core-i", guard: notRyzen, pattern: coreIPattern, resolve: intelModelMemory},
	{name: "intel-digits", guard: notRyzen, strip: socketToken, pattern: intelModelBare, resolve: intelModelMemory},
	{name: "ryzen", guard: mentionsRyzen, pattern: ryzenPattern, resolve: ryzenMemory},
}

// chipsetFamilies maps chipset tokens to the socket their boards carry
var chipsetFamilies = []struct {
	socket   string
	chipsets []string
}{
	{"LGA1700", []string{"H610", "B660", "B760", "H770", "Z690", "Z790"}},
	{"LGA1200", []string{"H410", "B460", "Z490", "H510", "B560", "Z590"}},
	{"LGA1151", []string{"H310", "B360", "B365", "Z370", "Z390", "H110", "B150", "B250", "Z270"}},
	{"LGA1150", []string{"H81", "B85", "Z87", "Z97"}},
	{"LGA1155", []string{"H61", "B75", "Z77"}},
	{"AM5", []string{"B650", "X670", "A620"}},
	{"AM4", []string{"B550", "X570", "A520", "B450", "X470", "A320"}},
}

// chipsetRules is built from chipsetFamilies. A token must not be preceded
// by a letter or digit nor followed by a digit, so "H61" never matches "H610".
var chipsetRules = buildChipsetRules()

func buildChipsetRules() []rule {
	rules := make([]rule, 0, len(chipsetFamilies))
	for _, family := range chipsetFamilies {
		pattern := `(?:^|[^A-Z0-9])(?:` + strings.Join(family.chipsets, "|") + `)(?:[^0-9]|$)`
		rules = append(rules, rule{
			name:    "chipset-" + strings.ToLower(family.socket),
			pattern: regexp.MustCompile(pattern),
			resolve: constant(family.socket),
		})
	}
	return rules
}

var (
	socketPattern   = regexp.MustCompile(`LGA\s*(\d+)`)
	wattagePattern  = regexp.MustCompile(`(?:^|[^0-9])(\d{3,4})\s*W(?:[^A-Z]|$)`)
	capacityPattern = regexp.MustCompile(`(?:^|[^0-9])(\d{1,4})\s*GB`)
)
