package team

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 编队序列化必须无损：Encode 后 Decode 逐字段还原
func TestTeamRoundTrip(t *testing.T) {
	fullyLocked := Team{NoDuplicates: true, MinBoost: MinBoost220}
	for i := range fullyLocked.Slots {
		fullyLocked.Slots[i] = Slot{UnitID: fmt.Sprintf("100%d", i+1), Locked: true}
	}

	partial := Team{MinBoost: MinBoost200}
	partial.Slots[0] = Slot{UnitID: "1001", Locked: true}
	partial.Slots[2] = Slot{UnitID: "1003"}

	for name, original := range map[string]Team{
		"全空队":   {},
		"全锁定满员": fullyLocked,
		"部分填充":  partial,
	} {
		data, err := EncodeTeam(original)
		require.NoError(t, err, name)

		decoded, err := DecodeTeam(data)
		require.NoError(t, err, name)
		assert.Equal(t, original, decoded, name)
	}
}

func TestDecodeTeamRejectsGarbage(t *testing.T) {
	_, err := DecodeTeam([]byte("not json"))
	assert.Error(t, err)
}

func TestMinBoostValues(t *testing.T) {
	assert.True(t, MinBoostAny.Valid())
	assert.True(t, MinBoost200.Valid())
	assert.True(t, MinBoost220.Valid())
	assert.False(t, MinBoost(150).Valid())

	assert.True(t, MinBoostAny.Met(0))
	assert.True(t, MinBoost200.Met(340))
	assert.False(t, MinBoost200.Met(140))
	assert.False(t, MinBoost220.Met(219))
	assert.True(t, MinBoost220.Met(220))
}

func TestTeamAccessors(t *testing.T) {
	var empty Team
	assert.Equal(t, "", empty.Leader())
	assert.Empty(t, empty.MemberIDs())

	var team Team
	team.Slots[0] = Slot{UnitID: "1001"}
	team.Slots[4] = Slot{UnitID: "1005"}
	assert.Equal(t, "1001", team.Leader())
	assert.Equal(t, []string{"1001", "1005"}, team.MemberIDs())
}
