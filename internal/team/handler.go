package team

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matthewshvorin/dokkan-team-backend/internal/skill"
	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
)

// --- API请求/响应模型 ---

type SuggestLeaderRequest struct {
	Roster  []string `json:"roster" binding:"required"`
	UseMean bool     `json:"useMean"`
}

type AutoFillRequest struct {
	Roster []string `json:"roster" binding:"required"`
	Team   Team     `json:"team"`
}

type SynergyRequest struct {
	Members []string `json:"members" binding:"required"`
}

type SavePresetRequest struct {
	Name string `json:"name" binding:"required"`
	Team Team   `json:"team"`
}

type CoveringLeaderResponse struct {
	ID        string          `json:"id"`
	CoverageA skill.StatBoost `json:"coverageA"`
	CoverageB skill.StatBoost `json:"coverageB"`
}

type SynergySummaryResponse struct {
	Pairwise []PairSynergy `json:"pairwise"`
	Total    int           `json:"total"`
}

type AutoFillResponse struct {
	Team    Team                   `json:"team"`
	Synergy SynergySummaryResponse `json:"synergy"`
	Leader  LeaderScore            `json:"leader"`
}

type PresetResponse struct {
	PresetID string `json:"presetId"`
	Name     string `json:"name"`
	Team     Team   `json:"team"`
}

// respondTypedError 将核心的类型化错误翻译为HTTP状态码。
func respondTypedError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, unit.ErrIndexNotBuilt):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "图鉴索引尚未就绪，请稍后重试"})
	case errors.Is(err, unit.ErrUnknownUnit):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrPresetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
	}
}

// --- 控制器函数 ---

// SuggestLeader 对提交的花名册推荐最佳队长
func SuggestLeader(c *gin.Context) {
	var req SuggestLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体必须包含roster字段"})
		return
	}

	scores, err := SuggestBestLeader(req.Roster, req.UseMean)
	if err != nil {
		respondTypedError(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}

// FindLeaders 查找同时覆盖两个目标角色的队长
func FindLeaders(c *gin.Context) {
	targetA := c.Query("targetA")
	targetB := c.Query("targetB")
	if targetA == "" || targetB == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "必须同时提供targetA和targetB"})
		return
	}

	minBoost, ok := parseMinBoost(c.DefaultQuery("minBoost", "any"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minBoost只接受 any/200/220"})
		return
	}

	leaders, err := FindLeadersFor(targetA, targetB, minBoost)
	if err != nil {
		respondTypedError(c, err)
		return
	}

	responses := make([]CoveringLeaderResponse, 0, len(leaders))
	for _, l := range leaders {
		responses = append(responses, CoveringLeaderResponse{
			ID:        l.UnitID,
			CoverageA: l.CoverageA,
			CoverageB: l.CoverageB,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// parseMinBoost 解析最低加成过滤参数
func parseMinBoost(raw string) (MinBoost, bool) {
	switch raw {
	case "", "any", "Any":
		return MinBoostAny, true
	case "200":
		return MinBoost200, true
	case "220":
		return MinBoost220, true
	}
	return MinBoostAny, false
}

// AutoFillTeamHandler 执行自动编队
func AutoFillTeamHandler(c *gin.Context) {
	var req AutoFillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体必须包含roster与team字段"})
		return
	}
	if !req.Team.MinBoost.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minBoost只接受 0/200/220"})
		return
	}

	result, err := AutoFillTeam(req.Roster, req.Team)
	if err != nil {
		respondTypedError(c, err)
		return
	}
	c.JSON(http.StatusOK, AutoFillResponse{
		Team: result.Team,
		Synergy: SynergySummaryResponse{
			Pairwise: result.Synergy.Pairwise,
			Total:    result.Synergy.Total,
		},
		Leader: result.LeaderAggregate,
	})
}

// GetSynergy 计算一组成员的契合度概览
func GetSynergy(c *gin.Context) {
	var req SynergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体必须包含members字段"})
		return
	}

	summary, err := GetSynergySummary(req.Members)
	if err != nil {
		respondTypedError(c, err)
		return
	}
	c.JSON(http.StatusOK, SynergySummaryResponse{
		Pairwise: summary.Pairwise,
		Total:    summary.Total,
	})
}

// SavePresetHandler 保存一条命名预设
func SavePresetHandler(c *gin.Context) {
	var req SavePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体必须包含name与team字段"})
		return
	}

	presetID, err := SavePreset(req.Name, req.Team)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存预设失败"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"presetId": presetID})
}

// GetPresets 列出全部预设
func GetPresets(c *gin.Context) {
	presets, err := ListPresets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取预设列表失败"})
		return
	}

	responses := make([]PresetResponse, 0, len(presets))
	for _, p := range presets {
		t, err := DecodeTeam([]byte(p.Team))
		if err != nil {
			continue
		}
		responses = append(responses, PresetResponse{
			PresetID: p.PresetID,
			Name:     p.Name,
			Team:     t,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// GetPresetByID 取出单条预设
func GetPresetByID(c *gin.Context) {
	preset, t, err := LoadPreset(c.Param("id"))
	if err != nil {
		respondTypedError(c, err)
		return
	}
	c.JSON(http.StatusOK, PresetResponse{
		PresetID: preset.PresetID,
		Name:     preset.Name,
		Team:     t,
	})
}

// DeletePresetByID 删除单条预设
func DeletePresetByID(c *gin.Context) {
	if err := DeletePreset(c.Param("id")); err != nil {
		respondTypedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
