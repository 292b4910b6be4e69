package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successorsText = `"Successors", "Fused Fighters" or "Pure Saiyans" Category Ki +3, HP +200% and ATK & DEF +170%, plus an additional HP, ATK & DEF +50% for characters who also belong to the "Gifted Warriors" or "Fusion" Category`

func TestParseSuccessorsSkill(t *testing.T) {
	rules := Parse(successorsText)
	require.Len(t, rules, 1)

	rule := rules[0]
	assert.False(t, rule.ParseFailed)
	assert.False(t, rule.Wildcard)
	assert.Equal(t, []string{"Successors", "Fused Fighters", "Pure Saiyans"}, rule.Categories)
	assert.Equal(t, StatBoost{HP: 200, ATK: 170, DEF: 170, Ki: 3}, rule.Base)

	require.NotNil(t, rule.Bonus)
	assert.Equal(t, []string{"Gifted Warriors", "Fusion"}, rule.Bonus.Categories)
	assert.Equal(t, StatBoost{HP: 50, ATK: 50, DEF: 50}, rule.Bonus.Boost)
}

func TestParseWildcard(t *testing.T) {
	rules := Parse(`"All Types" Ki +3 and HP, ATK & DEF +90%`)
	require.Len(t, rules, 1)

	rule := rules[0]
	assert.False(t, rule.ParseFailed)
	assert.True(t, rule.Wildcard)
	assert.Empty(t, rule.Categories)
	assert.Equal(t, StatBoost{HP: 90, ATK: 90, DEF: 90, Ki: 3}, rule.Base)
}

func TestParseBareWildcard(t *testing.T) {
	rules := Parse(`All Types Ki +2 and HP, ATK & DEF +70%`)
	require.Len(t, rules, 1)
	assert.True(t, rules[0].Wildcard)
	assert.Equal(t, StatBoost{HP: 70, ATK: 70, DEF: 70, Ki: 2}, rules[0].Base)
}

func TestParseMultipleClauses(t *testing.T) {
	text := `"Movie Heroes" Category Ki +3 and HP, ATK & DEF +170%; "Bond of Master and Disciple" Category Ki +2 and HP, ATK & DEF +130%`
	rules := Parse(text)
	require.Len(t, rules, 2)

	assert.Equal(t, []string{"Movie Heroes"}, rules[0].Categories)
	assert.Equal(t, StatBoost{HP: 170, ATK: 170, DEF: 170, Ki: 3}, rules[0].Base)
	assert.Equal(t, []string{"Bond of Master and Disciple"}, rules[1].Categories)
	assert.Equal(t, StatBoost{HP: 130, ATK: 130, DEF: 130, Ki: 2}, rules[1].Base)
}

func TestParseBareCategoryNames(t *testing.T) {
	rules := Parse(`Super Class or Extreme Class Category Ki +2 and HP, ATK & DEF +110%`)
	require.Len(t, rules, 1)
	assert.Equal(t, []string{"Super Class", "Extreme Class"}, rules[0].Categories)
}

// 不认识的写法必须软失败为零效果规则，而不是报错
func TestParseUnrecognizedText(t *testing.T) {
	for _, text := range []string{
		"Recovers 3000 HP per Ki Sphere obtained",
		"",
		"HP +77%", // 有加成但既无分类也无通配
	} {
		rules := Parse(text)
		require.Len(t, rules, 1, "text: %q", text)
		assert.True(t, rules[0].ParseFailed, "text: %q", text)
		assert.True(t, rules[0].Base.IsZero(), "text: %q", text)
		assert.Nil(t, rules[0].Bonus, "text: %q", text)
	}
}

// 解析是确定性的：同一字符串重复解析、跨缓存代解析，结果一致
func TestParseDeterministic(t *testing.T) {
	first := Parse(successorsText)
	second := Parse(successorsText)
	assert.Equal(t, first, second)

	ResetCache()
	third := Parse(successorsText)
	assert.Equal(t, first, third)
}

func TestParseKiOnlyClause(t *testing.T) {
	rules := Parse(`"Potara" Category Ki +4`)
	require.Len(t, rules, 1)
	assert.Equal(t, StatBoost{Ki: 4}, rules[0].Base)
	assert.Equal(t, []string{"Potara"}, rules[0].Categories)
}
