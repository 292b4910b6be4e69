package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBasePlusBonus(t *testing.T) {
	rules := Parse(successorsText)

	// 主条件命中 Pure Saiyans，条件加成命中 Gifted Warriors：基础+条件叠加
	cov := Evaluate([]string{"Pure Saiyans", "Gifted Warriors"}, rules)
	assert.True(t, cov.Matched)
	assert.False(t, cov.Wildcard)
	assert.Equal(t, StatBoost{HP: 250, ATK: 220, DEF: 220, Ki: 3}, cov.Boost)

	require.Len(t, cov.Trace, 1)
	assert.True(t, cov.Trace[0].BonusMatched)
}

func TestEvaluateBaseOnly(t *testing.T) {
	rules := Parse(successorsText)

	// 只命中主条件时，条件加成不生效
	cov := Evaluate([]string{"Successors"}, rules)
	assert.True(t, cov.Matched)
	assert.Equal(t, StatBoost{HP: 200, ATK: 170, DEF: 170, Ki: 3}, cov.Boost)
	require.Len(t, cov.Trace, 1)
	assert.False(t, cov.Trace[0].BonusMatched)
}

func TestEvaluateNoIntersection(t *testing.T) {
	rules := Parse(successorsText)

	cov := Evaluate([]string{"Potara"}, rules)
	assert.False(t, cov.Matched)
	assert.False(t, cov.Wildcard)
	assert.True(t, cov.Boost.IsZero())
	assert.Empty(t, cov.Trace)
}

func TestEvaluateWildcard(t *testing.T) {
	rules := Parse(`"All Types" Ki +3 and HP, ATK & DEF +90%`)

	cov := Evaluate([]string{"Potara"}, rules)
	assert.True(t, cov.Matched)
	assert.True(t, cov.Wildcard)
	assert.Equal(t, StatBoost{HP: 90, ATK: 90, DEF: 90, Ki: 3}, cov.Boost)
}

// 多条独立子句同时命中时加成按条叠加
func TestEvaluateAdditiveAcrossRules(t *testing.T) {
	text := `"Movie Heroes" Category Ki +3 and HP, ATK & DEF +170%; "Pure Saiyans" Category Ki +2 and HP, ATK & DEF +130%`
	rules := Parse(text)
	require.Len(t, rules, 2)

	cov := Evaluate([]string{"Movie Heroes", "Pure Saiyans"}, rules)
	assert.Equal(t, StatBoost{HP: 300, ATK: 300, DEF: 300, Ki: 5}, cov.Boost)
	assert.Len(t, cov.Trace, 2)
	assert.False(t, cov.Wildcard)
}

// 解析失败的规则不影响其余规则的评估
func TestEvaluateSkipsFailedRules(t *testing.T) {
	rules := append([]Rule{failedRule()}, Parse(`"Potara" Category Ki +4`)...)

	cov := Evaluate([]string{"Potara"}, rules)
	assert.True(t, cov.Matched)
	assert.Equal(t, StatBoost{Ki: 4}, cov.Boost)
	require.Len(t, cov.Trace, 1)
	assert.Equal(t, 1, cov.Trace[0].RuleIndex)
}

func TestEvaluateSelfLeading(t *testing.T) {
	rules := Parse(`"Fusion" Category Ki +3 and HP, ATK & DEF +150%`)

	// 角色给自己当队长与给队友评估走同一条纯函数路径
	cov := Evaluate([]string{"Fusion"}, rules)
	assert.Equal(t, StatBoost{HP: 150, ATK: 150, DEF: 150, Ki: 3}, cov.Boost)
}
