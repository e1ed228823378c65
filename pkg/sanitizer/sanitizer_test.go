package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "Dra. Ana Costa", expected: "Dra. Ana Costa"},
		{name: "bold tag", input: "<b>Dra. Ana</b> Costa", expected: "Dra. Ana Costa"},
		{name: "script removed with content", input: "<script>alert('xss')</script>Dra. Ana", expected: "Dra. Ana"},
		{name: "style removed with content", input: "<style>body{}</style>Cardiologia", expected: "Cardiologia"},
		{name: "control characters", input: "Rua\x00 das\x07 Flores\x7f", expected: "Rua das Flores"},
		{name: "whitespace collapsed", input: "  Rua   das \n\t Flores  ", expected: "Rua das Flores"},
		{name: "ampersand kept literal", input: "Tom &amp; Jerry", expected: "Tom & Jerry"},
		{name: "bare less-than kept", input: "idade < 18", expected: "idade < 18"},
		{name: "encoded script stripped", input: "&lt;script&gt;alert(1)&lt;/script&gt;ok", expected: "ok"},
		{name: "empty", input: "", expected: ""},
		{name: "only markup", input: "<img src=x onerror=alert(1)>", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>Consulta <i>de rotina</i></p>",
		"&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;",
		"&&amp;&amp;amp;",
		"a <b",
		"<<script>script>alert(1)<</script>/script>",
		"linha1\r\nlinha2\rlinha3",
		"\x01\x02<div>\x0b texto \x0c</div>",
		"<scr<script>ipt>alert(1)</script>",
		"caf\xe9 inv\xc3lido",
	}

	for _, input := range inputs {
		once := Clean(input)
		assert.Equal(t, once, Clean(once), "input %q", input)
	}
}

func TestClean_NeverLeavesScriptTag(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"<SCRIPT>alert(1)</SCRIPT>",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&amp;lt;script&amp;gt;",
		"<<script>script>alert(1)<</script>/script>",
		"<scr<script>ipt>alert(1)</script>",
		"text <script",
	}

	for _, input := range inputs {
		assert.NotContains(t, strings.ToLower(Clean(input)), "<script", "input %q", input)
	}
}

func TestPointer(t *testing.T) {
	assert.Nil(t, Pointer(nil))

	value := " <b>nota</b> "
	cleaned := Pointer(&value)
	if assert.NotNil(t, cleaned) {
		assert.Equal(t, "nota", *cleaned)
	}
}
