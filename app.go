package lignum

import (
	"fmt"
	"reflect"
)

// Module is a unit of installation: it registers resources on the app.
type Module interface {
	Install(app *App, cmd *Commands)
}

// App owns the scene and a type-keyed resource map. All work is
// synchronous and single-threaded: every command runs to completion on
// the caller's goroutine before the next frame can render.
type App struct {
	scene     *Scene
	resources map[reflect.Type]any
	modules   []Module
}

func NewApp() *App {
	return &App{
		scene:     NewScene(),
		resources: make(map[reflect.Type]any),
	}
}

// UseModules installs modules in order.
func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		app.modules = append(app.modules, module)
		module.Install(app, cmd)
	}
	return app
}

// Scene returns the owned scene store.
func (app *App) Scene() *Scene {
	return app.scene
}

// Commands returns a mutation handle bound to this app.
func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}
		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// GetResource fetches the resource of type T, or ok=false.
func GetResource[T any](app *App) (*T, bool) {
	var zero T
	r, ok := app.resources[reflect.TypeOf(zero)]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

// Logger returns the first Logger resource if present, otherwise a
// no-op logger. Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}

// Commands is the handle through which modules and the surrounding
// application mutate the scene and resources.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) AddNode(node *Node) NodeId {
	return cmd.app.scene.AddNode(node)
}

func (cmd *Commands) RemoveNode(id NodeId) {
	cmd.app.scene.RemoveNode(id)
}

func (cmd *Commands) Scene() *Scene {
	return cmd.app.scene
}
