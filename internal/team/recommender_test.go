package team

import (
	"testing"

	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestLeaderRanking(t *testing.T) {
	idx := testIndex()
	roster := []string{"1001", "1002", "1003", "1005"}

	scores, err := BestLeader(idx, roster, false)
	require.NoError(t, err)
	require.Len(t, scores, 4)

	// 1003 覆盖 1001/1005 各+150 → 600；1005 通配覆盖其余三人 → 420；
	// 1001 只覆盖 1002 → 400；1002 无人命中 → 0
	assert.Equal(t, "1003", scores[0].UnitID)
	assert.Equal(t, 600, scores[0].Score)
	assert.Equal(t, 2, scores[0].Covered)

	assert.Equal(t, "1005", scores[1].UnitID)
	assert.Equal(t, 420, scores[1].Score)

	assert.Equal(t, "1001", scores[2].UnitID)
	assert.Equal(t, 400, scores[2].Score)

	assert.Equal(t, "1002", scores[3].UnitID)
	assert.Equal(t, 0, scores[3].Score)
}

func TestBestLeaderMean(t *testing.T) {
	idx := testIndex()
	roster := []string{"1001", "1002", "1003", "1005"}

	scores, err := BestLeader(idx, roster, true)
	require.NoError(t, err)
	assert.Equal(t, "1003", scores[0].UnitID)
	assert.Equal(t, 200, scores[0].Score) // 600 / 3名其他成员
}

func TestBestLeaderEmptyRoster(t *testing.T) {
	idx := testIndex()

	scores, err := BestLeader(idx, nil, false)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestBestLeaderUnknownUnit(t *testing.T) {
	idx := testIndex()

	_, err := BestLeader(idx, []string{"1001", "9999"}, false)
	assert.ErrorIs(t, err, unit.ErrUnknownUnit)
}

func TestFindCoveringLeaders(t *testing.T) {
	idx := testIndex()

	leaders, err := FindCoveringLeaders(idx, "1001", "1003", MinBoostAny)
	require.NoError(t, err)
	require.Len(t, leaders, 3)

	// 1003 两侧各+300 → min 300；1005 两侧各+140 → min 140；
	// 1001 只覆盖自己一侧 → min 0
	assert.Equal(t, "1003", leaders[0].UnitID)
	assert.Equal(t, "1005", leaders[1].UnitID)
	assert.Equal(t, "1001", leaders[2].UnitID)

	assert.Equal(t, 300, leaders[0].CoverageA.ATKDEFTotal())
	assert.Equal(t, 300, leaders[0].CoverageB.ATKDEFTotal())
}

func TestFindCoveringLeadersMinBoost(t *testing.T) {
	idx := testIndex()

	leaders, err := FindCoveringLeaders(idx, "1001", "1003", MinBoost200)
	require.NoError(t, err)
	require.Len(t, leaders, 1)
	assert.Equal(t, "1003", leaders[0].UnitID)

	leaders, err = FindCoveringLeaders(idx, "1001", "1003", MinBoost220)
	require.NoError(t, err)
	assert.Equal(t, 1, len(leaders)) // 300+300 依旧达标
}

// 交换两个目标的顺序，结果集合一致，只是两侧覆盖字段互换
func TestFindCoveringLeadersSymmetric(t *testing.T) {
	idx := testIndex()

	forward, err := FindCoveringLeaders(idx, "1001", "1003", MinBoostAny)
	require.NoError(t, err)
	backward, err := FindCoveringLeaders(idx, "1003", "1001", MinBoostAny)
	require.NoError(t, err)

	require.Equal(t, len(forward), len(backward))
	for i := range forward {
		assert.Equal(t, forward[i].UnitID, backward[i].UnitID)
		assert.Equal(t, forward[i].CoverageA, backward[i].CoverageB)
		assert.Equal(t, forward[i].CoverageB, backward[i].CoverageA)
	}
}

func TestFindCoveringLeadersUnknownTarget(t *testing.T) {
	idx := testIndex()

	_, err := FindCoveringLeaders(idx, "9999", "1001", MinBoostAny)
	assert.ErrorIs(t, err, unit.ErrUnknownUnit)
}
