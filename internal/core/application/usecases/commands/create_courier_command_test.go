package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCourierCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	location, err := courier.NewLocation(12.97, 77.59)
	require.NoError(t, err)

	cmd, err := commands.NewCreateCourierCommand(id, "Ravi", "+91-5550200", "KA-01-1234", location)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.CourierID())
	assert.Equal(t, "Ravi", cmd.Name())
	assert.Equal(t, "+91-5550200", cmd.Phone())
	assert.Equal(t, "KA-01-1234", cmd.VehicleNumber())
	assert.Equal(t, location, cmd.Location())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateCourierCommand_MissingFields(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewCreateCourierCommand(id, "", "+91-5550200", "KA-01-1234", courier.Location{})
	assert.ErrorIs(t, err, courier.ErrNameIsRequired)

	_, err = commands.NewCreateCourierCommand(id, "Ravi", "", "KA-01-1234", courier.Location{})
	assert.ErrorIs(t, err, courier.ErrPhoneIsRequired)

	_, err = commands.NewCreateCourierCommand(id, "Ravi", "+91-5550200", "", courier.Location{})
	assert.ErrorIs(t, err, courier.ErrVehicleNumberIsRequired)
}

func TestCreateCourierCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateCourierCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateCourierCommandIsNotConstructed)
}
