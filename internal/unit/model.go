package unit

import "gorm.io/gorm"

// Unit 定义了数据库中角色的数据结构。
// 一个角色可以有多个变体（基础形态、变身、EZA阶段），见 Variant。
type Unit struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// UnitID 是角色在游戏中的唯一字符串ID, 例如 "1011720"
	// 业务逻辑中以它作为主键
	UnitID string `gorm:"uniqueIndex;not null" json:"id"`

	// DisplayName 是角色的展示名称
	DisplayName string `json:"displayName"`

	// Rarity 是角色的稀有度 (LR/UR/SSR/SR/R/N)
	Rarity string `json:"rarity"`

	// Type 是角色的属性 (AGL/TEQ/INT/STR/PHY，可带 Super/Extreme 前缀)
	Type string `json:"type"`

	// Thumb 是缩略图资源的相对路径，仅作为不透明字符串保存
	Thumb string `json:"thumb"`

	// SourceURL 是角色详情页的来源地址
	SourceURL string `json:"sourceUrl"`
}

// Variant 是角色的一个变体，覆盖评估的原子对象。
// 技能文本之外的列表字段（连携、分类、属性表）以JSON文本列存储。
type Variant struct {
	gorm.Model

	// UnitID 关联所属角色；与 Key 组成变体的唯一键
	UnitID string `gorm:"uniqueIndex:idx_unit_variant;not null" json:"unitId"`

	// Key 区分变体，例如 "base"、"eza"、"eza_2"
	Key string `gorm:"uniqueIndex:idx_unit_variant;not null" json:"key"`

	EZA      bool `json:"eza"`
	SuperEZA bool `json:"superEza"`
	Step     int  `json:"step"`

	Rarity      string `json:"rarity"`
	Type        string `json:"type"`
	ObtainType  string `json:"obtainType"`
	ReleaseDate string `json:"releaseDate"`

	// --- 技能组 (Kit) ---

	LeaderSkill string `json:"leaderSkill"`

	SuperAttackName   string `json:"superAttackName"`
	SuperAttackEffect string `json:"superAttackEffect"`
	UltraAttackName   string `json:"ultraAttackName"`
	UltraAttackEffect string `json:"ultraAttackEffect"`

	PassiveName   string `json:"passiveName"`
	PassiveEffect string `json:"passiveEffect"`
	// PassiveLines 是被动技能的逐行拆解，JSON编码的字符串数组
	PassiveLines string `json:"passiveLines"`

	ActiveName       string `json:"activeName"`
	ActiveEffect     string `json:"activeEffect"`
	ActiveConditions string `json:"activeConditions"`
	StandbySkill     string `json:"standbySkill"`

	// Links 是有序的连携技能名列表，JSON编码
	Links string `json:"links"`
	// Categories 是有序的分类名集合，JSON编码
	Categories string `json:"categories"`
	// Stats 是 属性名 × 百分比档位 的数值表，JSON编码
	Stats string `json:"stats"`

	// --- 能力标志 ---

	Transformation     bool `json:"transformation"`
	ReversibleExchange bool `json:"reversibleExchange"`
	Giant              bool `json:"giant"`
	Revival            bool `json:"revival"`
}

// rarityRanks 用于按稀有度排序，数值越大越稀有。
var rarityRanks = map[string]int{
	"N": 0, "R": 1, "SR": 2, "SSR": 3, "UR": 4, "LR": 5,
}

// RarityRank 返回稀有度的序数，未知稀有度记为-1。
func RarityRank(rarity string) int {
	if rank, ok := rarityRanks[rarity]; ok {
		return rank
	}
	return -1
}
