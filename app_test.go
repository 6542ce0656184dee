package lignum

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func TestApp_addResources(t *testing.T) {
	app := NewApp()

	resource1 := &MockResource1{name: "Resource1"}
	app.addResources(resource1)

	got, ok := GetResource[MockResource1](app)
	require.True(t, ok)
	assert.Equal(t, "Resource1", got.name)

	// Adding the same resource type twice is a programmer error.
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := &MockResource2{name: "Resource2"}
	app.addResources(resource2)
	_, ok = GetResource[MockResource2](app)
	assert.True(t, ok)
}

func TestApp_GetResourceMissing(t *testing.T) {
	app := NewApp()
	_, ok := GetResource[MockResource1](app)
	assert.False(t, ok)
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	var app *App
	assert.NotNil(t, app.Logger())

	app = NewApp()
	logger := app.Logger()
	require.NotNil(t, logger)
	assert.False(t, logger.DebugEnabled())
	// Must not panic.
	logger.Infof("ignored %d", 1)
}

func TestLoggingModule_InstallsLogger(t *testing.T) {
	app := NewApp().UseModules(LoggingModule{Prefix: "viewer", Debug: true})

	logger := app.Logger()
	require.NotNil(t, logger)
	assert.True(t, logger.DebugEnabled())

	logger.SetDebug(false)
	assert.False(t, logger.DebugEnabled())
}

func TestCommands_MutateScene(t *testing.T) {
	app := NewApp()
	cmd := app.Commands()

	id := cmd.AddNode(&Node{Name: "n", Visible: true})
	assert.Equal(t, 1, cmd.Scene().Len())

	cmd.RemoveNode(id)
	assert.Equal(t, 0, app.Scene().Len())
}
