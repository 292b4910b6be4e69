package team

import (
	"testing"

	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoFillFromEmptyTeam(t *testing.T) {
	idx := testIndex()
	roster := []string{"1001", "1002", "1003", "1004", "1005"}

	result, err := AutoFill(idx, roster, Team{NoDuplicates: true})
	require.NoError(t, err)

	// 队长由BestLeader决定
	assert.Equal(t, "1003", result.Leader())

	// 花名册5人全部入队，剩余两槽留空
	assert.ElementsMatch(t, []string{"1001", "1002", "1003", "1004", "1005"}, result.MemberIDs())
	assert.True(t, result.Slots[5].Empty())
	assert.True(t, result.Slots[6].Empty())

	// 贪心顺序：先高覆盖高契合（1001），再1005，再1002，垫底1004
	assert.Equal(t, "1001", result.Slots[1].UnitID)
	assert.Equal(t, "1005", result.Slots[2].UnitID)
	assert.Equal(t, "1002", result.Slots[3].UnitID)
	assert.Equal(t, "1004", result.Slots[4].UnitID)
}

func TestAutoFillRespectsLockedSlots(t *testing.T) {
	idx := testIndex()
	roster := []string{"1001", "1002", "1003", "1004", "1005"}

	current := Team{NoDuplicates: true}
	current.Slots[0] = Slot{UnitID: "1002", Locked: true}
	current.Slots[3] = Slot{UnitID: "1001", Locked: true}
	// 非锁定槽的既有占用会被重新决策
	current.Slots[1] = Slot{UnitID: "1005"}

	result, err := AutoFill(idx, roster, current)
	require.NoError(t, err)

	// 锁定槽占用者绝不改动
	assert.Equal(t, Slot{UnitID: "1002", Locked: true}, result.Slots[0])
	assert.Equal(t, Slot{UnitID: "1001", Locked: true}, result.Slots[3])

	// 开启防重复时，锁定占用者不会再次出现在非锁定槽
	seen := map[string]int{}
	for i, s := range result.Slots {
		if s.Locked || s.Empty() {
			continue
		}
		assert.NotEqual(t, "1001", s.UnitID, "slot %d", i)
		assert.NotEqual(t, "1002", s.UnitID, "slot %d", i)
		seen[s.UnitID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "unit %s 在非锁定槽中重复出现", id)
	}
}

func TestAutoFillLeavesSlotsEmptyWhenRosterShort(t *testing.T) {
	idx := testIndex()

	result, err := AutoFill(idx, []string{"1001", "1003"}, Team{NoDuplicates: true})
	require.NoError(t, err)

	assert.Equal(t, 2, len(result.MemberIDs()))
	empties := 0
	for _, s := range result.Slots {
		if s.Empty() {
			empties++
		}
	}
	assert.Equal(t, 5, empties)
}

func TestAutoFillMinBoostFilter(t *testing.T) {
	idx := testIndex()

	// 花名册内没有任何队长能对其余成员给出平均220%的覆盖：
	// 宁可整队留空，也不放宽约束
	team := Team{NoDuplicates: true, MinBoost: MinBoost220}
	result, err := AutoFill(idx, []string{"1002", "1004"}, team)
	require.NoError(t, err)
	assert.Empty(t, result.MemberIDs())

	// 1003带队对 1001/1005 平均覆盖300%，满足220档
	result, err = AutoFill(idx, []string{"1001", "1003", "1005"}, team)
	require.NoError(t, err)
	assert.Equal(t, "1003", result.Leader())
	assert.ElementsMatch(t, []string{"1001", "1003", "1005"}, result.MemberIDs())
}

func TestAutoFillEmptyRoster(t *testing.T) {
	idx := testIndex()

	result, err := AutoFill(idx, nil, Team{})
	require.NoError(t, err)
	assert.Empty(t, result.MemberIDs())
}

func TestAutoFillUnknownRosterUnit(t *testing.T) {
	idx := testIndex()

	_, err := AutoFill(idx, []string{"1001", "9999"}, Team{})
	assert.ErrorIs(t, err, unit.ErrUnknownUnit)
}
