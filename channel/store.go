package channel

// State is the per-channel record: the current value, the value saved when
// the channel was last disabled, and whether the channel contributes.
type State struct {
	Value   int
	Backup  int
	Enabled bool
}

// Store holds one State per channel. It stores what it is given; callers
// keep values within [0, MaxValue]. A Store is not safe for concurrent use.
type Store struct {
	states [Count]State
}

// NewStore returns a store with every channel enabled at 0.
func NewStore() *Store {
	s := &Store{}
	for i := range s.states {
		s.states[i].Enabled = true
	}
	return s
}

func (s *Store) Value(c Channel) int        { return s.states[c].Value }
func (s *Store) SetValue(c Channel, v int)  { s.states[c].Value = v }
func (s *Store) Backup(c Channel) int       { return s.states[c].Backup }
func (s *Store) SetBackup(c Channel, v int) { s.states[c].Backup = v }
func (s *Store) Enabled(c Channel) bool     { return s.states[c].Enabled }

func (s *Store) SetEnabled(c Channel, enabled bool) { s.states[c].Enabled = enabled }

// State returns a copy of the record for c.
func (s *Store) State(c Channel) State { return s.states[c] }
