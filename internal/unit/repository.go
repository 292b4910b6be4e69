package unit

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"github.com/matthewshvorin/dokkan-team-backend/internal/skill"
)

// --- 类型化错误 ---

var (
	// ErrIndexNotBuilt 表示尚无一次成功的图鉴索引构建，属于"系统未就绪"。
	ErrIndexNotBuilt = errors.New("图鉴索引尚未构建")

	// ErrUnknownUnit 表示角色ID不在当前索引中，属于"输入有误"。
	// 与 ErrIndexNotBuilt 相互独立，调用方可据此区分处理。
	ErrUnknownUnit = errors.New("未知的角色ID")
)

// --- In-memory Catalog Index ---

// VariantInfo 持有单个变体在内存中的只读数据，是覆盖评估的原子对象。
// 详情接口直接序列化本结构，故带json标签。
type VariantInfo struct {
	Key        string `json:"key"`
	EZA        bool   `json:"eza"`
	SuperEZA   bool   `json:"superEza"`
	Step       int    `json:"step"`
	Rarity     string `json:"rarity"`
	RarityRank int    `json:"-"`
	Type       string `json:"type"`
	ObtainType string `json:"obtainType"`

	LeaderSkill string `json:"leaderSkill"`

	SuperAttackName   string   `json:"superAttackName"`
	SuperAttackEffect string   `json:"superAttackEffect"`
	UltraAttackName   string   `json:"ultraAttackName,omitempty"`
	UltraAttackEffect string   `json:"ultraAttackEffect,omitempty"`
	PassiveName       string   `json:"passiveName"`
	PassiveEffect     string   `json:"passiveEffect"`
	PassiveLines      []string `json:"passiveLines,omitempty"`
	ActiveName        string   `json:"activeName,omitempty"`
	ActiveEffect      string   `json:"activeEffect,omitempty"`
	ActiveConditions  string   `json:"activeConditions,omitempty"`
	StandbySkill      string   `json:"standbySkill,omitempty"`

	Links      []string                     `json:"links"`
	Categories []string                     `json:"categories"`
	Stats      map[string]map[string]string `json:"stats,omitempty"`

	Transformation     bool `json:"transformation"`
	ReversibleExchange bool `json:"reversibleExchange"`
	Giant              bool `json:"giant"`
	Revival            bool `json:"revival"`
}

// UnitInfo 持有单个角色在内存中的只读数据。
type UnitInfo struct {
	ID         string
	Name       string
	Rarity     string
	RarityRank int
	Type       string
	Thumb      string
	SourceURL  string
	Variants   []VariantInfo
}

// Base 返回角色的基础变体（第一个变体），即默认被评估/展示的形态。
func (u *UnitInfo) Base() *VariantInfo {
	if len(u.Variants) == 0 {
		return nil
	}
	return &u.Variants[0]
}

// ResolveVariant 根据深链参数选取变体：form 为变体下标，mode 为 "eza" 时
// 优先选取EZA变体，step 进一步指定EZA阶段。参数越界时退回基础变体。
func (u *UnitInfo) ResolveVariant(form int, mode string, step int) *VariantInfo {
	if form > 0 && form < len(u.Variants) {
		return &u.Variants[form]
	}
	if mode == "eza" {
		var pick *VariantInfo
		for i := range u.Variants {
			v := &u.Variants[i]
			if !v.EZA {
				continue
			}
			if v.Step == step {
				return v
			}
			if pick == nil {
				pick = v
			}
		}
		if pick != nil {
			return pick
		}
	}
	return u.Base()
}

// Index 是一次图鉴加载的完整反查快照，构建完成后只读。
// 读者要么看到旧的完整快照，要么看到新的完整快照，绝无中间态。
type Index struct {
	generation uint64

	units map[string]*UnitInfo
	ids   []string // 全部角色ID，升序

	categoryToUnits map[string][]string
	linkToUnits     map[string][]string
}

// activeIndex 是当前生效的快照。重载时整体替换，无需细粒度锁。
var activeIndex atomic.Pointer[Index]

// indexGeneration 随每次成功构建自增，用于标识加载代。
var indexGeneration atomic.Uint64

// Snapshot 返回当前生效的图鉴索引快照。
func Snapshot() (*Index, error) {
	idx := activeIndex.Load()
	if idx == nil {
		return nil, ErrIndexNotBuilt
	}
	return idx, nil
}

// ReplaceIndex 原子地将全新构建的快照设为当前索引，并重置解析缓存，
// 开启新的加载代。
func ReplaceIndex(idx *Index) {
	idx.generation = indexGeneration.Add(1)
	activeIndex.Store(idx)
	skill.ResetCache()
}

// BuildIndex 从一组内存角色记录构建完整的反查索引。纯函数，不触碰全局状态。
func BuildIndex(infos []UnitInfo) *Index {
	idx := &Index{
		units:           make(map[string]*UnitInfo, len(infos)),
		ids:             make([]string, 0, len(infos)),
		categoryToUnits: make(map[string][]string),
		linkToUnits:     make(map[string][]string),
	}

	for i := range infos {
		info := &infos[i]
		if _, dup := idx.units[info.ID]; dup {
			continue
		}
		idx.units[info.ID] = info
		idx.ids = append(idx.ids, info.ID)

		// 反查映射基于基础变体的归属
		if base := info.Base(); base != nil {
			for _, cat := range base.Categories {
				idx.categoryToUnits[cat] = append(idx.categoryToUnits[cat], info.ID)
			}
			for _, link := range base.Links {
				idx.linkToUnits[link] = append(idx.linkToUnits[link], info.ID)
			}
		}
	}

	sort.Strings(idx.ids)
	for _, members := range idx.categoryToUnits {
		sort.Strings(members)
	}
	for _, members := range idx.linkToUnits {
		sort.Strings(members)
	}
	return idx
}

// --- Snapshot Accessors ---

// Generation 返回快照所属的加载代序号。
func (idx *Index) Generation() uint64 {
	return idx.generation
}

// Count 返回快照内的角色数量。
func (idx *Index) Count() int {
	return len(idx.ids)
}

// AllIDs 返回快照内全部角色ID（升序）。调用方不得修改返回的切片。
func (idx *Index) AllIDs() []string {
	return idx.ids
}

// Unit 按ID取出角色，ID不存在时返回 ErrUnknownUnit。
func (idx *Index) Unit(id string) (*UnitInfo, error) {
	info, ok := idx.units[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, id)
	}
	return info, nil
}

// UnitsInCategory 返回归属指定分类的全部角色ID。
func (idx *Index) UnitsInCategory(name string) []string {
	return idx.categoryToUnits[name]
}

// UnitsWithLink 返回持有指定连携技能的全部角色ID。
func (idx *Index) UnitsWithLink(name string) []string {
	return idx.linkToUnits[name]
}

// Categories 返回快照内出现过的全部分类名（升序）。
func (idx *Index) Categories() []string {
	names := make([]string, 0, len(idx.categoryToUnits))
	for name := range idx.categoryToUnits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Repository Initialization ---

// InitializeRepository 从SQLite加载全部角色与变体，构建图鉴索引并原子生效。
// 应用启动与显式重载时各调用一次。
func InitializeRepository() error {
	var unitsFromDB []Unit
	if err := database.DB.Order("unit_id asc").Find(&unitsFromDB).Error; err != nil {
		return fmt.Errorf("无法从SQLite加载角色数据: %w", err)
	}
	if len(unitsFromDB) == 0 {
		return fmt.Errorf("角色数据为空，无法构建图鉴索引")
	}

	var variantsFromDB []Variant
	if err := database.DB.Order("unit_id asc, step asc, id asc").Find(&variantsFromDB).Error; err != nil {
		return fmt.Errorf("无法从SQLite加载变体数据: %w", err)
	}

	variantsByUnit := make(map[string][]VariantInfo, len(unitsFromDB))
	for _, v := range variantsFromDB {
		variantsByUnit[v.UnitID] = append(variantsByUnit[v.UnitID], toVariantInfo(v))
	}

	infos := make([]UnitInfo, 0, len(unitsFromDB))
	for _, u := range unitsFromDB {
		infos = append(infos, UnitInfo{
			ID:         u.UnitID,
			Name:       u.DisplayName,
			Rarity:     u.Rarity,
			RarityRank: RarityRank(u.Rarity),
			Type:       u.Type,
			Thumb:      u.Thumb,
			SourceURL:  u.SourceURL,
			Variants:   variantsByUnit[u.UnitID],
		})
	}

	ReplaceIndex(BuildIndex(infos))
	fmt.Printf("图鉴索引构建成功，共加载 %d 个角色。\n", len(infos))
	return nil
}

// toVariantInfo 将数据库行解码为内存变体记录。 JSON列解码失败时留空。
func toVariantInfo(v Variant) VariantInfo {
	info := VariantInfo{
		Key:                v.Key,
		EZA:                v.EZA,
		SuperEZA:           v.SuperEZA,
		Step:               v.Step,
		Rarity:             v.Rarity,
		RarityRank:         RarityRank(v.Rarity),
		Type:               v.Type,
		ObtainType:         v.ObtainType,
		LeaderSkill:        v.LeaderSkill,
		SuperAttackName:    v.SuperAttackName,
		SuperAttackEffect:  v.SuperAttackEffect,
		UltraAttackName:    v.UltraAttackName,
		UltraAttackEffect:  v.UltraAttackEffect,
		PassiveName:        v.PassiveName,
		PassiveEffect:      v.PassiveEffect,
		ActiveName:         v.ActiveName,
		ActiveEffect:       v.ActiveEffect,
		ActiveConditions:   v.ActiveConditions,
		StandbySkill:       v.StandbySkill,
		Transformation:     v.Transformation,
		ReversibleExchange: v.ReversibleExchange,
		Giant:              v.Giant,
		Revival:            v.Revival,
	}
	if v.PassiveLines != "" {
		_ = json.Unmarshal([]byte(v.PassiveLines), &info.PassiveLines)
	}
	if v.Links != "" {
		_ = json.Unmarshal([]byte(v.Links), &info.Links)
	}
	if v.Categories != "" {
		_ = json.Unmarshal([]byte(v.Categories), &info.Categories)
	}
	if v.Stats != "" {
		_ = json.Unmarshal([]byte(v.Stats), &info.Stats)
	}
	return info
}
