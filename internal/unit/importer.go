package unit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"github.com/tidwall/gjson"
	"gorm.io/gorm/clause"
)

// 抓取器为每个角色目录落盘一个 METADATA.json，顶层是
// unit_id/display_name/rarity/type 加上 variants[]，每个变体带
// key/eza/step/kit。导入器只读取这棵目录树，不负责抓取本身。

const metadataFileName = "METADATA.json"

// ImportCards 扫描 cardsDir 下的角色目录，将METADATA.json解析后
// 批量写入SQLite（按 unit_id / 变体 key 做upsert）。返回导入的角色数。
func ImportCards(cardsDir string) (int, error) {
	entries, err := os.ReadDir(cardsDir)
	if err != nil {
		return 0, fmt.Errorf("无法读取卡片目录 %s: %w", cardsDir, err)
	}

	imported := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaPath := filepath.Join(cardsDir, entry.Name(), metadataFileName)
		raw, err := os.ReadFile(metaPath)
		if err != nil {
			// 没有元数据的目录直接跳过
			continue
		}
		if err := importOne(gjson.ParseBytes(raw)); err != nil {
			fmt.Printf("警告: 跳过目录 %s: %v\n", entry.Name(), err)
			continue
		}
		imported++
	}

	fmt.Printf("卡片导入完成，共导入 %d 个角色。\n", imported)
	return imported, nil
}

// importOne 将单个角色的元数据upsert进数据库。
func importOne(meta gjson.Result) error {
	unitID := meta.Get("unit_id").String()
	if unitID == "" {
		return fmt.Errorf("缺少unit_id")
	}

	record := Unit{
		UnitID:      unitID,
		DisplayName: meta.Get("display_name").String(),
		Rarity:      meta.Get("rarity").String(),
		Type:        meta.Get("type").String(),
		Thumb:       firstThumbPath(meta),
		SourceURL:   meta.Get("source_base_url").String(),
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "unit_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "rarity", "type", "thumb", "source_url"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("无法写入角色 %s: %w", unitID, err)
	}

	var firstErr error
	meta.Get("variants").ForEach(func(_, v gjson.Result) bool {
		if err := importVariant(unitID, v); err != nil && firstErr == nil {
			firstErr = err
		}
		return true
	})
	return firstErr
}

func importVariant(unitID string, v gjson.Result) error {
	kit := v.Get("kit")
	record := Variant{
		UnitID:      unitID,
		Key:         v.Get("key").String(),
		EZA:         v.Get("eza").Bool(),
		SuperEZA:    v.Get("is_super_eza").Bool(),
		Step:        int(v.Get("step").Int()),
		Rarity:      v.Get("rarity").String(),
		Type:        v.Get("type").String(),
		ObtainType:  v.Get("obtain_type").String(),
		ReleaseDate: v.Get("release_date").String(),

		LeaderSkill:       kit.Get("leader_skill").String(),
		SuperAttackName:   kit.Get("super_attack.name").String(),
		SuperAttackEffect: kit.Get("super_attack.effect").String(),
		UltraAttackName:   kit.Get("ultra_super_attack.name").String(),
		UltraAttackEffect: kit.Get("ultra_super_attack.effect").String(),
		PassiveName:       kit.Get("passive_skill.name").String(),
		PassiveEffect:     kit.Get("passive_skill.effect").String(),
		PassiveLines:      rawJSONArray(kit.Get("passive_skill.lines")),
		ActiveName:        kit.Get("active_skill.name").String(),
		ActiveEffect:      kit.Get("active_skill.effect").String(),
		ActiveConditions:  kit.Get("active_skill.activation_conditions").String(),
		StandbySkill:      kit.Get("standby_skill").String(),
		Links:             rawJSONArray(kit.Get("link_skills")),
		Categories:        rawJSONArray(kit.Get("categories")),
		Stats:             rawJSONObject(kit.Get("stats")),

		Transformation:     kit.Get("transformation").Bool(),
		ReversibleExchange: kit.Get("reversible_exchange").Bool(),
		Giant:              kit.Get("giant").Bool(),
		Revival:            kit.Get("revival").Bool(),
	}

	if record.Key == "" {
		record.Key = "base"
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "unit_id"}, {Name: "key"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("无法写入角色 %s 的变体 %s: %w", unitID, record.Key, err)
	}
	return nil
}

// firstThumbPath 从assets_index里挑选列表页缩略图：
// 优先整卡卡面，其次普通缩略图，与原站点的选图顺序一致。
func firstThumbPath(meta gjson.Result) string {
	idx := meta.Get("assets_index")
	for _, item := range idx.Get("card_art").Array() {
		if item.Get("subtype").String() == "full_card" {
			return item.Get("path").String()
		}
	}
	for _, item := range idx.Get("thumbnail").Array() {
		if p := item.Get("path").String(); p != "" {
			return p
		}
	}
	return ""
}

// rawJSONArray 原样保留JSON数组文本，缺失时返回空串。
func rawJSONArray(r gjson.Result) string {
	if !r.Exists() || !r.IsArray() {
		return ""
	}
	return r.Raw
}

func rawJSONObject(r gjson.Result) string {
	if !r.Exists() || !r.IsObject() {
		return ""
	}
	return r.Raw
}
