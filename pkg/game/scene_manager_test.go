package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// closableScene records Close calls.
type closableScene struct {
	MockScene
	closed int
}

func (c *closableScene) Close() error {
	c.closed++
	return nil
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Close handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 60.0)
	sm.Close()
}

// TestSceneManagerSwitchClosesPrevious verifies that replaced scenes are closed once.
func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	first := &closableScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	if first.closed != 0 {
		t.Errorf("switching to the same scene should not close it, closed=%d", first.closed)
	}

	sm.SwitchTo(second)
	if first.closed != 1 {
		t.Errorf("expected first scene closed once, got %d", first.closed)
	}
	sm.Update(1.0 / 60.0)
	if first.updateCalled || !second.updateCalled {
		t.Error("only the active scene should be updated")
	}
}

// TestSceneManagerLoadScene verifies factory-based scene creation.
func TestSceneManagerLoadScene(t *testing.T) {
	tests := []struct {
		name      string
		factory   SceneFactory
		wantOK    bool
		wantScene bool
	}{
		{"no factory", nil, false, false},
		{"factory error", func(string) (Scene, error) { return nil, errors.New("boom") }, false, false},
		{"factory ok", func(string) (Scene, error) { return &MockScene{}, nil }, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			sm.SetSceneFactory(tt.factory)
			if got := sm.LoadScene("arrivals"); got != tt.wantOK {
				t.Errorf("LoadScene() = %v, want %v", got, tt.wantOK)
			}
			if (sm.GetCurrentScene() != nil) != tt.wantScene {
				t.Errorf("current scene presence = %v, want %v", sm.GetCurrentScene() != nil, tt.wantScene)
			}
		})
	}
}

// TestSceneManagerClose verifies Close releases the active scene.
func TestSceneManagerClose(t *testing.T) {
	sm := NewSceneManager()
	scene := &closableScene{}
	sm.SwitchTo(scene)
	sm.Close()
	if scene.closed != 1 {
		t.Errorf("expected Close to be forwarded once, got %d", scene.closed)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("current scene should be cleared after Close")
	}
}
