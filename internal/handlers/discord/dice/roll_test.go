package dice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/archaosrpg/archaos-bot/internal/clients/roller"
	mockroller "github.com/archaosrpg/archaos-bot/internal/clients/roller/mock"
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
)

func TestRollMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockroller.NewMockClient(ctrl)

	client.EXPECT().Roll(gomock.Any(), "2d6+3").Return([]roller.RollGroup{
		{Info: "2d6+3", Results: []int{4, 5}, Mods: []int{3, 3}, Total: 15},
	}, nil)

	msg, err := RollMessage(context.Background(), client, "2d6+3")
	require.NoError(t, err)
	assert.Contains(t, msg, "2d6+3")
	assert.Contains(t, msg, "**15**")
}

func TestRollMessageEmptyExpression(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockroller.NewMockClient(ctrl)

	_, err := RollMessage(context.Background(), client, "")
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestRollMessageServiceDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockroller.NewMockClient(ctrl)

	client.EXPECT().Roll(gomock.Any(), "1d20").Return(nil, dnderr.Unavailable("roll service unreachable"))

	_, err := RollMessage(context.Background(), client, "1d20")
	require.Error(t, err)
	assert.True(t, dnderr.IsUnavailable(err))
}
