package calculator

// PressRequest is the JSON body for POST /calculator/press.
type PressRequest struct {
	State *State `json:"state,omitempty"` // omitted means the initial state
	Key   string `json:"key"`
}

// PressResponse is the JSON response for POST /calculator/press.
type PressResponse struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	State State  `json:"state"`
}

// SequenceRequest is the JSON body for POST /calculator/sequence.
type SequenceRequest struct {
	State *State   `json:"state,omitempty"`
	Keys  []string `json:"keys"`
}

// SequenceStep records the state after one key of a sequence.
type SequenceStep struct {
	Index      int    `json:"index"`
	Key        string `json:"key"`
	Kind       string `json:"kind"`
	Display    string `json:"display"`
	Expression string `json:"expression"`
}

// SequenceResponse is the JSON response for POST /calculator/sequence.
type SequenceResponse struct {
	Steps []SequenceStep `json:"steps"`
	State State          `json:"state"`
}

// KeypadResponse is the JSON response for GET /calculator/keypad.
type KeypadResponse struct {
	Rows [][]string `json:"rows"`
}
