package team

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"gorm.io/gorm"
)

// ErrPresetNotFound 表示指定的预设ID不存在。
var ErrPresetNotFound = errors.New("找不到指定的预设")

// SavePreset 将编队以给定名字持久化为新预设，返回生成的预设ID。
func SavePreset(name string, t Team) (string, error) {
	encoded, err := EncodeTeam(t)
	if err != nil {
		return "", err
	}

	presetID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("无法生成预设ID: %w", err)
	}

	preset := Preset{
		PresetID: presetID.String(),
		Name:     name,
		Team:     string(encoded),
	}
	if err := database.DB.Create(&preset).Error; err != nil {
		return "", fmt.Errorf("无法保存预设: %w", err)
	}
	return preset.PresetID, nil
}

// ListPresets 返回全部预设（按创建时间降序）。
func ListPresets() ([]Preset, error) {
	var presets []Preset
	if err := database.DB.Order("created_at desc").Find(&presets).Error; err != nil {
		return nil, fmt.Errorf("无法读取预设列表: %w", err)
	}
	return presets, nil
}

// LoadPreset 按ID取出预设并还原其中的编队。
func LoadPreset(presetID string) (*Preset, Team, error) {
	var preset Preset
	err := database.DB.Where("preset_id = ?", presetID).First(&preset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Team{}, fmt.Errorf("%w: %s", ErrPresetNotFound, presetID)
		}
		return nil, Team{}, fmt.Errorf("无法读取预设 %s: %w", presetID, err)
	}

	t, err := DecodeTeam([]byte(preset.Team))
	if err != nil {
		return nil, Team{}, err
	}
	return &preset, t, nil
}

// DeletePreset 按ID删除预设。
func DeletePreset(presetID string) error {
	res := database.DB.Where("preset_id = ?", presetID).Delete(&Preset{})
	if res.Error != nil {
		return fmt.Errorf("无法删除预设 %s: %w", presetID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, presetID)
	}
	return nil
}
