package session

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/robotarm/internal/config"
)

// Storage location of the saved session.
const (
	stateObject   = "session"
	stateProperty = "last"
)

// State is what a remembered session restores.
type State struct {
	Controls  config.ControlsConfig `yaml:"controls"`
	Animating bool                  `yaml:"animating"`
}

// Store persists State in the platform's app data directory. A nil
// manager gives a store that never finds a saved state and discards saves.
type Store struct {
	data *gdata.Manager
}

// OpenStore opens the data directory for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return &Store{data: m}, nil
}

// Load returns the saved state. ok is false when nothing was saved yet.
func (st *Store) Load() (state State, ok bool, err error) {
	if st == nil || st.data == nil {
		return State{}, false, nil
	}
	if !st.data.ObjectPropExists(stateObject, stateProperty) {
		return State{}, false, nil
	}

	raw, err := st.data.LoadObjectProp(stateObject, stateProperty)
	if err != nil {
		return State{}, false, fmt.Errorf("load session: %w", err)
	}
	if err := yaml.Unmarshal(raw, &state); err != nil {
		return State{}, false, fmt.Errorf("parse session: %w", err)
	}
	return state, true, nil
}

// Save writes state, replacing any earlier one.
func (st *Store) Save(state State) error {
	if st == nil || st.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := st.data.SaveObjectProp(stateObject, stateProperty, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
