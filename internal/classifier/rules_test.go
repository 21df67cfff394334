package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePreservesOrder(t *testing.T) {
	m, err := Compile(
		RuleSet{Name: "first", Rules: []Rule{Keyword("abc")}},
		RuleSet{Name: "second", Rules: []Rule{Regex(`a.c`)}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	hit, ok := m.Match("xxabcxx")
	require.True(t, ok)
	assert.Equal(t, "first", hit.Set)

	hit, ok = m.Match("a-c")
	require.True(t, ok)
	assert.Equal(t, "second", hit.Set)
}

func TestCompileRejectsBadRules(t *testing.T) {
	_, err := Compile(RuleSet{Name: "bad", Rules: []Rule{Regex(`(`)}})
	assert.Error(t, err)

	_, err = Compile(RuleSet{Name: "bad", Rules: []Rule{{Kind: "glob", Pattern: "*"}}})
	assert.Error(t, err)

	assert.Panics(t, func() { MustCompile(RuleSet{Name: "bad", Rules: []Rule{Regex(`[`)}}) })
}

func TestMatchIsSearchNotFullMatch(t *testing.T) {
	m := MustCompile(RuleSet{Name: "r", Rules: []Rule{Regex(`solve\s+for\s+\w+`)}})
	_, ok := m.Match("could you please solve for y, thanks")
	assert.True(t, ok)
}

func TestEmptyMatcher(t *testing.T) {
	m := MustCompile()
	_, ok := m.Match("anything")
	assert.False(t, ok)
}

func TestWidenClasses(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`\d+`, `\p{Nd}+`},
		{`who is \w+`, `who is [\p{L}\p{N}_]+`},
		{`[+\-*/]`, `[+\-*/]`},
		{`[\d.]`, `[\p{Nd}.]`},
		{`a\.b`, `a\.b`},
		{`x\s*=`, `x[\x{9}-\x{d}\x{1c}-\x{1f}\x{85}\p{Z}]*=`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, widenClasses(tt.in), tt.in)
	}
}

func TestRegexRulesMatchUnicode(t *testing.T) {
	m := MustCompile(RuleSet{Name: "r", Rules: []Rule{Regex(`where is \w+`)}})
	_, ok := m.Match("where is örebro")
	assert.True(t, ok)

	m = MustCompile(RuleSet{Name: "r", Rules: []Rule{Regex(`\d+\s*\.`)}})
	_, ok = m.Match("step ٣. begin")
	assert.True(t, ok)
}
