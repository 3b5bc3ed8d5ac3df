package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefundOrderCommand(t *testing.T) {
	cmd, err := commands.NewRefundOrderCommand("pay_xyz")

	require.NoError(t, err)
	assert.Equal(t, "pay_xyz", cmd.PaymentID())
	assert.NoError(t, cmd.Validate())
}

func TestNewRefundOrderCommand_EmptyPaymentID(t *testing.T) {
	_, err := commands.NewRefundOrderCommand("")
	assert.ErrorIs(t, err, commands.ErrPaymentIDIsRequired)
}

func TestRefundOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.RefundOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrRefundOrderCommandIsNotConstructed)
}
