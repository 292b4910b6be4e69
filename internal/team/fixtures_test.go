package team

import (
	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
)

// testIndex 构造一个小型图鉴快照供编队相关测试使用。
// 覆盖关系（基础变体）：
//
//	1001 Gogeta  LR  队长技 "Fusion" +200%        分类 Fusion / Pure Saiyans
//	1002 Vegito  UR  队长技 "Potara" +170%        分类 Potara / Fusion
//	1003 Goku    UR  队长技 "Pure Saiyans" +150%  分类 Pure Saiyans / Goku's Family
//	1004 Trunks  SSR 队长技不可解析               分类 Hybrid Saiyans
//	1005 Broly   UR  队长技 All Types +70%        分类 Pure Saiyans / Movie Bosses
func testIndex() *unit.Index {
	return unit.BuildIndex([]unit.UnitInfo{
		{
			ID: "1001", Name: "Gogeta", Rarity: "LR", RarityRank: unit.RarityRank("LR"), Type: "STR",
			Variants: []unit.VariantInfo{{
				Key:         "base",
				LeaderSkill: `"Fusion" Category Ki +4 and HP, ATK & DEF +200%`,
				Categories:  []string{"Fusion", "Pure Saiyans"},
				Links:       []string{"Super Saiyan", "Fused Fighter", "Kamehameha"},
			}},
		},
		{
			ID: "1002", Name: "Vegito", Rarity: "UR", RarityRank: unit.RarityRank("UR"), Type: "AGL",
			Variants: []unit.VariantInfo{{
				Key:         "base",
				LeaderSkill: `"Potara" Category Ki +3 and HP, ATK & DEF +170%`,
				Categories:  []string{"Potara", "Fusion"},
				Links:       []string{"Super Saiyan", "Fused Fighter"},
			}},
		},
		{
			ID: "1003", Name: "Goku", Rarity: "UR", RarityRank: unit.RarityRank("UR"), Type: "AGL",
			Variants: []unit.VariantInfo{{
				Key:         "base",
				LeaderSkill: `"Pure Saiyans" Category Ki +3 and HP, ATK & DEF +150%`,
				Categories:  []string{"Pure Saiyans", "Goku's Family"},
				Links:       []string{"Super Saiyan", "Kamehameha"},
			}},
		},
		{
			ID: "1004", Name: "Trunks", Rarity: "SSR", RarityRank: unit.RarityRank("SSR"), Type: "PHY",
			Variants: []unit.VariantInfo{{
				Key:         "base",
				LeaderSkill: "Recovers 3000 HP per Ki Sphere obtained",
				Categories:  []string{"Hybrid Saiyans"},
				Links:       []string{"Shattering the Limit"},
			}},
		},
		{
			ID: "1005", Name: "Broly", Rarity: "UR", RarityRank: unit.RarityRank("UR"), Type: "STR",
			Variants: []unit.VariantInfo{{
				Key:         "base",
				LeaderSkill: `"All Types" Ki +2 and HP, ATK & DEF +70%`,
				Categories:  []string{"Pure Saiyans", "Movie Bosses"},
				Links:       []string{"Super Saiyan", "Berserker"},
			}},
		},
	})
}
