package team

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// TeamSize 是队伍的槽位数：队长 + 5名队员 + 好友槽。
const TeamSize = 7

// MinBoost 是最低加成过滤档位，作用于 ATK+DEF 合计覆盖。
type MinBoost int

const (
	MinBoostAny MinBoost = 0
	MinBoost200 MinBoost = 200
	MinBoost220 MinBoost = 220
)

// Valid 判断档位是否为已知取值。
func (m MinBoost) Valid() bool {
	switch m {
	case MinBoostAny, MinBoost200, MinBoost220:
		return true
	}
	return false
}

// Met 判断一个 ATK+DEF 合计值是否满足该档位。
func (m MinBoost) Met(atkDefTotal int) bool {
	return m == MinBoostAny || atkDefTotal >= int(m)
}

// Slot 是队伍中的一个槽位。UnitID 为空表示空槽。
type Slot struct {
	UnitID string `json:"unitId"`
	Locked bool   `json:"locked"`
}

// Empty 判断槽位是否为空。
func (s Slot) Empty() bool {
	return s.UnitID == ""
}

// Team 是一次编队：固定7个槽位（槽0为队长）加上整队设置。
// 只有自动编队和显式的用户编辑会修改它；读取预设或重置时整体替换。
type Team struct {
	Slots [TeamSize]Slot `json:"slots"`

	// NoDuplicates 开启时，自动编队不会让同一角色ID出现在两个非锁定槽中
	NoDuplicates bool `json:"noDuplicates"`

	// MinBoost 是队长覆盖的最低加成过滤档位
	MinBoost MinBoost `json:"minBoost"`
}

// Leader 返回队长槽的角色ID，空串表示队长槽为空。
func (t *Team) Leader() string {
	return t.Slots[0].UnitID
}

// MemberIDs 返回全部非空槽位的角色ID，按槽位顺序。
func (t *Team) MemberIDs() []string {
	ids := make([]string, 0, TeamSize)
	for _, s := range t.Slots {
		if !s.Empty() {
			ids = append(ids, s.UnitID)
		}
	}
	return ids
}

// --- 序列化契约 ---
// 编队与预设的存储介质是外部协作者，核心只保证无损的编解码：
// 任何合法Team经过 Encode->Decode 必须逐字段还原。

// EncodeTeam 将编队序列化为JSON。
func EncodeTeam(t Team) ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("无法序列化编队: %w", err)
	}
	return data, nil
}

// DecodeTeam 从JSON还原编队。
func DecodeTeam(data []byte) (Team, error) {
	var t Team
	if err := json.Unmarshal(data, &t); err != nil {
		return Team{}, fmt.Errorf("无法解析编队数据: %w", err)
	}
	return t, nil
}

// Preset 是持久化到SQLite的命名编队快照。
type Preset struct {
	gorm.Model

	// PresetID 是预设的UUID，对外暴露的主键
	PresetID string `gorm:"uniqueIndex;not null" json:"presetId"`

	// Name 是用户给预设起的名字
	Name string `gorm:"not null" json:"name"`

	// Team 是 EncodeTeam 产出的JSON文本
	Team string `gorm:"not null" json:"team"`
}
