package unit

// 定义与角色相关的Redis键名
const (
	// InfoKey 是一个Redis Hash，按角色ID存储列表页所需的静态数据
	InfoKey = "unit_info"

	// ReleaseKey 是一个Redis Sorted Set，按发布时间为列表页排序角色
	ReleaseKey = "unit_release"

	// CategoryKeyPrefix 是镜像分类成员关系的Redis Set键前缀，
	// 例如 unit_category:Fusion
	CategoryKeyPrefix = "unit_category:"
)

// CachedUnitInfo 定义了在Redis unit_info Hash中存储的角色静态数据
type CachedUnitInfo struct {
	Name       string `json:"name"`
	Rarity     string `json:"rarity"`
	Type       string `json:"type"`
	Thumb      string `json:"thumb"`
	EZA        bool   `json:"eza"`
	NumVariant int    `json:"numVariants"`
}
