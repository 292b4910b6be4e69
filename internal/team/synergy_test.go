package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamSynergyNoSharedLinks(t *testing.T) {
	idx := testIndex()

	// 1003与1004没有任何共有连携
	total, err := TeamSynergy(idx, []string{"1003", "1004"})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestTeamSynergyEmptyAndSingle(t *testing.T) {
	idx := testIndex()

	total, err := TeamSynergy(idx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	total, err = TeamSynergy(idx, []string{"1001"})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestPairwiseSynergyCounts(t *testing.T) {
	idx := testIndex()

	pairs, err := PairwiseSynergy(idx, []string{"1001", "1002", "1003"})
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	byPair := make(map[Pair][]string, len(pairs))
	for _, p := range pairs {
		byPair[p.Pair] = p.SharedLinks
	}
	// 1001/1002 共有 Super Saiyan + Fused Fighter
	assert.Equal(t, []string{"Super Saiyan", "Fused Fighter"}, byPair[Pair{I: 0, J: 1}])
	// 1001/1003 共有 Super Saiyan + Kamehameha
	assert.Equal(t, []string{"Super Saiyan", "Kamehameha"}, byPair[Pair{I: 0, J: 2}])
	// 1002/1003 共有 Super Saiyan
	assert.Equal(t, []string{"Super Saiyan"}, byPair[Pair{I: 1, J: 2}])
}

// 契合度与成员顺序无关
func TestTeamSynergySymmetric(t *testing.T) {
	idx := testIndex()

	forward, err := TeamSynergy(idx, []string{"1001", "1002", "1003", "1005"})
	require.NoError(t, err)
	backward, err := TeamSynergy(idx, []string{"1005", "1003", "1002", "1001"})
	require.NoError(t, err)
	assert.Equal(t, forward, backward)
}

// 同一角色占据两个槽位时，该配对的契合度恰为其连携数
func TestTeamSynergyDuplicatedUnit(t *testing.T) {
	idx := testIndex()

	pairs, err := PairwiseSynergy(idx, []string{"1001", "1001"})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Len(t, pairs[0].SharedLinks, 3)
}

func TestTeamSynergyUnknownUnit(t *testing.T) {
	idx := testIndex()

	_, err := TeamSynergy(idx, []string{"1001", "9999"})
	require.Error(t, err)
}
