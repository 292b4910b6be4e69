package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInfos() []UnitInfo {
	return []UnitInfo{
		{
			ID: "1000010", Name: "Goku", Rarity: "UR", RarityRank: RarityRank("UR"), Type: "AGL",
			Variants: []VariantInfo{{
				Key:        "base",
				Categories: []string{"Pure Saiyans", "Goku's Family"},
				Links:      []string{"Super Saiyan", "Kamehameha"},
			}},
		},
		{
			ID: "1000020", Name: "Vegeta", Rarity: "LR", RarityRank: RarityRank("LR"), Type: "STR",
			Variants: []VariantInfo{
				{
					Key:        "base",
					Categories: []string{"Pure Saiyans", "Vegeta's Family"},
					Links:      []string{"Saiyan Warrior Race", "Kamehameha"},
				},
				{
					Key: "eza", EZA: true, Step: 1,
					Categories: []string{"Pure Saiyans"},
				},
			},
		},
	}
}

func TestBuildIndexMappings(t *testing.T) {
	idx := BuildIndex(testInfos())

	assert.Equal(t, 2, idx.Count())
	assert.Equal(t, []string{"1000010", "1000020"}, idx.AllIDs())

	// 分类 → 角色
	assert.Equal(t, []string{"1000010", "1000020"}, idx.UnitsInCategory("Pure Saiyans"))
	assert.Equal(t, []string{"1000010"}, idx.UnitsInCategory("Goku's Family"))
	assert.Empty(t, idx.UnitsInCategory("Potara"))

	// 连携 → 角色
	assert.Equal(t, []string{"1000010", "1000020"}, idx.UnitsWithLink("Kamehameha"))
	assert.Equal(t, []string{"1000020"}, idx.UnitsWithLink("Saiyan Warrior Race"))

	// 角色 → 归属
	info, err := idx.Unit("1000020")
	require.NoError(t, err)
	assert.Equal(t, "Vegeta", info.Name)
	assert.Equal(t, []string{"Pure Saiyans", "Vegeta's Family"}, info.Base().Categories)
}

func TestIndexUnknownUnit(t *testing.T) {
	idx := BuildIndex(testInfos())

	_, err := idx.Unit("9999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.NotErrorIs(t, err, ErrIndexNotBuilt)
}

func TestResolveVariant(t *testing.T) {
	idx := BuildIndex(testInfos())
	info, err := idx.Unit("1000020")
	require.NoError(t, err)

	// 默认取基础变体
	assert.Equal(t, "base", info.ResolveVariant(0, "base", 0).Key)
	// mode=eza 选取EZA变体
	assert.Equal(t, "eza", info.ResolveVariant(0, "eza", 1).Key)
	// form 越界时退回基础变体；step 未命中时退回首个EZA变体
	assert.Equal(t, "base", info.ResolveVariant(7, "base", 0).Key)
	assert.Equal(t, "eza", info.ResolveVariant(0, "eza", 9).Key)
}

// 重载必须整体替换快照：旧快照持有者不受影响，新快照代序号递增
func TestReplaceIndexIsAtomicSwap(t *testing.T) {
	first := BuildIndex(testInfos())
	ReplaceIndex(first)

	held, err := Snapshot()
	require.NoError(t, err)

	second := BuildIndex(testInfos()[:1])
	ReplaceIndex(second)

	// 旧快照依旧完整可用
	assert.Equal(t, 2, held.Count())
	_, err = held.Unit("1000020")
	assert.NoError(t, err)

	// 新快照生效且代序号更新
	current, err := Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, current.Count())
	assert.Greater(t, current.Generation(), held.Generation())
}
