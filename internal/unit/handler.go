package unit

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"github.com/matthewshvorin/dokkan-team-backend/internal/skill"
)

// --- API响应模型 ---

type UnitSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	Type        string `json:"type"`
	ImageURL    string `json:"imageUrl"`
	EZA         bool   `json:"eza"`
	NumVariants int    `json:"numVariants"`
}

type UnitDetailResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Rarity      string       `json:"rarity"`
	Type        string       `json:"type"`
	ImageURL    string       `json:"imageUrl"`
	SourceURL   string       `json:"sourceUrl"`
	VariantKeys []string     `json:"variantKeys"`
	Variant     *VariantInfo `json:"variant"`
}

type CoverageResponse struct {
	UnitID      string         `json:"unitId"`
	LeaderID    string         `json:"leaderId"`
	LeaderSkill string         `json:"leaderSkill"`
	Coverage    skill.Coverage `json:"coverage"`
}

const imageBaseUrl = "/images/cards/"

func formatImageURL(c *gin.Context, thumb string) string {
	if thumb == "" {
		return ""
	}
	return fmt.Sprintf("http://%s%s%s", c.Request.Host, imageBaseUrl, thumb)
}

// parseVariantQuery 读取深链参数 form/mode/step，核心只接收解析后的结果
func parseVariantQuery(c *gin.Context) (int, string, int) {
	form, _ := strconv.Atoi(c.DefaultQuery("form", "0"))
	mode := c.DefaultQuery("mode", "base")
	step, _ := strconv.Atoi(c.DefaultQuery("step", "0"))
	return form, mode, step
}

// respondTypedError 将类型化错误翻译为对应的HTTP状态码。
// IndexNotBuilt 代表系统未就绪(503)，UnknownUnit 代表输入有误(404)。
func respondTypedError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrIndexNotBuilt):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "图鉴索引尚未就绪，请稍后重试"})
	case errors.Is(err, ErrUnknownUnit):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
	}
}

// --- 控制器函数 ---

// GetUnits 获取角色列表
func GetUnits(c *gin.Context) {
	if !database.IsRedisHealthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "服务暂时不可用，请稍后重试"})
		return
	}

	summaries, err := GetUnitSummaries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取角色列表失败"})
		return
	}

	responses := make([]UnitSummaryResponse, 0, len(summaries))
	for _, dto := range summaries {
		responses = append(responses, UnitSummaryResponse{
			ID:          dto.ID,
			Name:        dto.Info.Name,
			Rarity:      dto.Info.Rarity,
			Type:        dto.Info.Type,
			ImageURL:    formatImageURL(c, dto.Info.Thumb),
			EZA:         dto.Info.EZA,
			NumVariants: dto.Info.NumVariant,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// GetUnitByID 根据ID获取单个角色的详情，变体由 form/mode/step 深链参数选择
func GetUnitByID(c *gin.Context) {
	form, mode, step := parseVariantQuery(c)
	dto, err := GetUnitDetail(c.Param("id"), form, mode, step)
	if err != nil {
		respondTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, UnitDetailResponse{
		ID:          dto.ID,
		Name:        dto.Name,
		Rarity:      dto.Rarity,
		Type:        dto.Type,
		ImageURL:    formatImageURL(c, dto.Thumb),
		SourceURL:   dto.SourceURL,
		VariantKeys: dto.VariantKeys,
		Variant:     dto.Variant,
	})
}

// GetUnitCoverage 查询指定队长对该角色的加成覆盖
func GetUnitCoverage(c *gin.Context) {
	leaderID := c.Query("leader")
	if leaderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必须通过leader参数指定队长角色ID"})
		return
	}

	form, mode, step := parseVariantQuery(c)
	dto, err := GetCoverage(c.Param("id"), leaderID, form, mode, step)
	if err != nil {
		respondTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, CoverageResponse{
		UnitID:      dto.UnitID,
		LeaderID:    dto.LeaderID,
		LeaderSkill: dto.LeaderSkill,
		Coverage:    dto.Coverage,
	})
}
