package commands_test

import (
	"testing"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("deposit_50", testLineInputs())
	require.NoError(t, err)
	assert.Equal(t, order.StatusDeposit50, cmd.Status())
	assert.Len(t, cmd.Lines(), 1)
}

func TestNewCreateOrderCommand_EmptyStatusDefaultsToInitial(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("", testLineInputs())
	require.NoError(t, err)
	assert.Equal(t, order.InitialStatus, cmd.Status())
}

func TestNewCreateOrderCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("shipped", testLineInputs())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_TerminalStatusRejected(t *testing.T) {
	// completed, refund and cancelled are only reachable through transitions;
	// a directly created completed order would have no finisher, ever
	for _, status := range []string{"completed", "refund", "cancelled"} {
		_, err := commands.NewCreateOrderCommand(status, testLineInputs())
		require.Error(t, err, "status %s", status)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
}
