package render

import (
	"regexp"
	"strings"
	"testing"
)

var openTagRE = regexp.MustCompile(`<([a-z]+)((?:\s+[a-z-]+(?:="[^"]*")?)*)>`)
var attrRE = regexp.MustCompile(`([a-z-]+)(?:="([^"]*)")?`)

// attrsOf returns the attributes of the first opening tag whose class list
// contains class. An empty class matches the first tag.
func attrsOf(t *testing.T, html, class string) map[string]string {
	t.Helper()
	for _, m := range openTagRE.FindAllStringSubmatch(html, -1) {
		attrs := map[string]string{}
		for _, a := range attrRE.FindAllStringSubmatch(m[2], -1) {
			attrs[a[1]] = a[2]
		}
		if class == "" || hasClass(attrs["class"], class) {
			return attrs
		}
	}
	t.Fatalf("no element with class %q in %q", class, html)
	return nil
}

func hasClass(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if c == class {
			return true
		}
	}
	return false
}

// hidsIn lists every data-hid value in document order.
func hidsIn(html string) []string {
	var hids []string
	for _, m := range regexp.MustCompile(`data-hid="([^"]*)"`).FindAllStringSubmatch(html, -1) {
		hids = append(hids, m[1])
	}
	return hids
}
